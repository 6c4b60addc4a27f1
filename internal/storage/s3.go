// Package storage uploads stylist profile pictures: decode, downscale,
// re-encode as webp, put to S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/luminasalon/salon-manager/internal/config"
)

const maxDimension = 512

type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func New(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// UploadProfilePicture normalizes the image and stores it under key,
// returning the public URL.
func (u *Uploader) UploadProfilePicture(ctx context.Context, key string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.publicURL + "/" + key, nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	if w >= h {
		h = h * maxDimension / w
		w = maxDimension
	} else {
		w = w * maxDimension / h
		h = maxDimension
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
