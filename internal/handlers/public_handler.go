package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/cache"
	domain "github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/usecase/booking"
	"github.com/luminasalon/salon-manager/internal/usecase/catalog"
	"github.com/luminasalon/salon-manager/internal/usecase/roster"
)

// PublicHandler serves the unauthenticated booking flow: browse services
// and stylists, check a day's availability, book a slot.
type PublicHandler struct {
	catalog *catalog.Catalog
	roster  *roster.Roster
	booking *booking.Booking
	cache   *cache.Client
}

func NewPublicHandler(
	catalogUC *catalog.Catalog,
	rosterUC *roster.Roster,
	bookingUC *booking.Booking,
	cache *cache.Client,
) *PublicHandler {
	return &PublicHandler{
		catalog: catalogUC,
		roster:  rosterUC,
		booking: bookingUC,
		cache:   cache,
	}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	if cached, _ := h.cache.Get(c.Request.Context(), cache.ViewPublicServices); cached != nil {
		var services []models.Service
		if json.Unmarshal(cached, &services) == nil {
			httpresp.List(c, services)
			return
		}
	}

	active := true
	services, err := h.catalog.List(c.Request.Context(), domain.Filter{Active: &active})
	if err != nil {
		writeError(c, err)
		return
	}

	if payload, err := json.Marshal(services); err == nil {
		h.cache.Set(c.Request.Context(), cache.ViewPublicServices, payload, cache.DefaultTTL)
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListStylists(c *gin.Context) {
	if cached, _ := h.cache.Get(c.Request.Context(), cache.ViewPublicStylists); cached != nil {
		var stylists []models.Stylist
		if json.Unmarshal(cached, &stylists) == nil {
			httpresp.List(c, stylists)
			return
		}
	}

	stylists, err := h.roster.ListStylists(c.Request.Context(), true)
	if err != nil {
		writeError(c, err)
		return
	}

	if payload, err := json.Marshal(stylists); err == nil {
		h.cache.Set(c.Request.Context(), cache.ViewPublicStylists, payload, cache.DefaultTTL)
	}

	httpresp.List(c, stylists)
}

// StylistServices returns the active offerings of one stylist, for the
// service-selection step of the booking form.
func (h *PublicHandler) StylistServices(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offerings, err := h.roster.ListOfferingsByStylist(c.Request.Context(), stylistID, true)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, offerings)
}

// Availability: GET /availability?stylist_id=...&service_id=...&date=2026-09-01
func (h *PublicHandler) Availability(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Query("stylist_id"))
	if err != nil {
		httpresp.BadRequest(c, "stylist_id is required")
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httpresp.BadRequest(c, "service_id is required")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httpresp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.booking.Availability(c.Request.Context(), stylistID, serviceID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseBooking(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	ap, err := h.booking.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, "Appointment requested. You will receive a confirmation email.", ap)
}
