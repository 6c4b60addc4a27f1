package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/config"
	"github.com/luminasalon/salon-manager/internal/httperr"
)

// HTTPProvider talks to a GoTrue-compatible auth service over its admin and
// token endpoints.
type HTTPProvider struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewHTTPProvider(cfg *config.Config) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    cfg.AuthURL,
		serviceKey: cfg.AuthServiceKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) CreateUser(ctx context.Context, email, password string) (*User, error) {
	payload := map[string]any{
		"email":         email,
		"email_confirm": true,
	}
	if password != "" {
		payload["password"] = password
	}

	var out User
	if err := p.do(ctx, http.MethodPost, "/admin/users", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *HTTPProvider) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return p.do(ctx, http.MethodDelete, "/admin/users/"+id.String(), nil, nil)
}

func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	var out struct {
		User User `json:"user"`
	}
	if err := p.do(ctx, http.MethodPost, "/token?grant_type=password", payload, &out); err != nil {
		if httperr.IsBusiness(err, "identity_rejected") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}
	return &out.User, nil
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, payload, out any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("encode identity request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return httperr.ErrBusiness("identity_rejected")
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("identity service: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode identity response: %w", err)
		}
	}
	return nil
}

// Compile-time check
var _ Provider = (*HTTPProvider)(nil)
