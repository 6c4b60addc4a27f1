package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminasalon/salon-manager/internal/cache"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/usecase/roster"
)

type OfferingHandler struct {
	uc    *roster.Roster
	cache *cache.Client
}

func NewOfferingHandler(uc *roster.Roster, cache *cache.Client) *OfferingHandler {
	return &OfferingHandler{uc: uc, cache: cache}
}

func (h *OfferingHandler) List(c *gin.Context) {
	offerings, err := h.uc.ListOfferings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, offerings)
}

func (h *OfferingHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offerings, err := h.uc.ListOfferingsByStylist(c.Request.Context(), stylistID, false)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, offerings)
}

func (h *OfferingHandler) Create(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseOffering(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	off, err := h.uc.AddOffering(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.Created(c, "Offering created.", off)
}

func (h *OfferingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseOfferingUpdate(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	off, err := h.uc.UpdateOffering(c.Request.Context(), actorFrom(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Offering updated.", off)
}

func (h *OfferingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.RemoveOffering(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Offering deleted.", nil)
}

// Offerings shape what the public pages show for both services and
// stylists, so both public views are dropped.
func (h *OfferingHandler) invalidateViews(c *gin.Context) {
	h.cache.Invalidate(
		c.Request.Context(),
		cache.ViewAdminOfferings,
		cache.ViewPublicServices,
		cache.ViewPublicStylists,
	)
}
