package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminasalon/salon-manager/internal/cache"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/storage"
	"github.com/luminasalon/salon-manager/internal/usecase/roster"
)

// maxPictureBytes caps profile picture uploads at 5 MiB.
const maxPictureBytes = 5 << 20

type StylistHandler struct {
	uc       *roster.Roster
	uploader *storage.Uploader
	cache    *cache.Client
}

func NewStylistHandler(uc *roster.Roster, uploader *storage.Uploader, cache *cache.Client) *StylistHandler {
	return &StylistHandler{uc: uc, uploader: uploader, cache: cache}
}

func (h *StylistHandler) List(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpresp.BadRequest(c, "active must be true or false")
			return
		}
		activeOnly = v
	}

	if !activeOnly {
		if cached, _ := h.cache.Get(c.Request.Context(), cache.ViewAdminStylists); cached != nil {
			var stylists []models.Stylist
			if json.Unmarshal(cached, &stylists) == nil {
				httpresp.List(c, stylists)
				return
			}
		}
	}

	stylists, err := h.uc.ListStylists(c.Request.Context(), activeOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	if !activeOnly {
		if payload, err := json.Marshal(stylists); err == nil {
			h.cache.Set(c.Request.Context(), cache.ViewAdminStylists, payload, cache.DefaultTTL)
		}
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	st, err := h.uc.GetStylist(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "", st)
}

func (h *StylistHandler) Create(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseStylist(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	st, err := h.uc.CreateStylist(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.Created(c, "Stylist created. An invite was sent to their email.", st)
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseStylist(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	st, err := h.uc.UpdateStylist(c.Request.Context(), actorFrom(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Stylist updated.", st)
}

// UploadPicture accepts a multipart "picture" file, normalizes it to webp
// and stores it under a key derived from the stylist id.
func (h *StylistHandler) UploadPicture(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		httpresp.Invalid(c, map[string][]string{"picture": {"is required"}})
		return
	}
	if fileHeader.Size > maxPictureBytes {
		httpresp.Invalid(c, map[string][]string{"picture": {"must be smaller than 5MB"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	key := fmt.Sprintf("stylists/%s/profile.webp", id)
	url, err := h.uploader.UploadProfilePicture(c.Request.Context(), key, file)
	if err != nil {
		writeError(c, err)
		return
	}

	st, err := h.uc.SetProfilePicture(c.Request.Context(), actorFrom(c), id, url)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Profile picture updated.", st)
}

func (h *StylistHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteStylist(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Stylist deleted.", nil)
}

func (h *StylistHandler) invalidateViews(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.ViewAdminStylists, cache.ViewPublicStylists)
}
