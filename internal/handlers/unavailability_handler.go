package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/usecase/planner"
)

type UnavailabilityHandler struct {
	uc *planner.Planner
}

func NewUnavailabilityHandler(uc *planner.Planner) *UnavailabilityHandler {
	return &UnavailabilityHandler{uc: uc}
}

// List: GET /unavailability?stylist_id=...
func (h *UnavailabilityHandler) List(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Query("stylist_id"))
	if err != nil {
		httpresp.BadRequest(c, "stylist_id is required")
		return
	}

	blocks, err := h.uc.ListUnavailability(c.Request.Context(), stylistID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *UnavailabilityHandler) Create(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseUnavailability(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	block, err := h.uc.AddUnavailability(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, "Unavailability created.", block)
}

func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.RemoveUnavailability(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "Unavailability deleted.", nil)
}
