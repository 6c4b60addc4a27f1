package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/usecase/booking"
)

type AppointmentHandler struct {
	uc *booking.Booking
}

func NewAppointmentHandler(uc *booking.Booking) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// ListForDay returns a stylist's agenda for one calendar day:
// GET /appointments?stylist_id=...&date=2026-09-01
func (h *AppointmentHandler) ListForDay(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Query("stylist_id"))
	if err != nil {
		httpresp.BadRequest(c, "stylist_id is required")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httpresp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	appts, err := h.uc.ListForDay(c.Request.Context(), stylistID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, appts)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.uc.Confirm, "Appointment confirmed.")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.uc.Cancel, "Appointment cancelled.")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.uc.Complete, "Appointment completed.")
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*models.Appointment, error),
	message string,
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := apply(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, message, ap)
}
