package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/usecase/planner"
)

type ScheduleHandler struct {
	uc *planner.Planner
}

func NewScheduleHandler(uc *planner.Planner) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Week returns the stylist's recurring schedule grouped by weekday:
// GET /schedules?stylist_id=...
func (h *ScheduleHandler) Week(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Query("stylist_id"))
	if err != nil {
		httpresp.BadRequest(c, "stylist_id is required")
		return
	}

	week, err := h.uc.WeekFor(c.Request.Context(), stylistID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "", week)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseWorkSchedule(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	ws, err := h.uc.AddInterval(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, "Schedule entry created.", ws)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseWorkSchedule(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	ws, err := h.uc.UpdateInterval(c.Request.Context(), actorFrom(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "Schedule entry updated.", ws)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.RemoveInterval(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "Schedule entry deleted.", nil)
}
