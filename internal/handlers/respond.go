package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/middleware"
)

// businessMessages translates business error codes into the messages the
// booking form and admin UI display. Unknown codes fall back to a generic
// message rather than leaking the code.
var businessMessages = map[string]struct {
	status  int
	message string
}{
	"service_not_found":     {http.StatusNotFound, "Service not found."},
	"stylist_not_found":     {http.StatusNotFound, "Stylist not found."},
	"offering_not_found":    {http.StatusNotFound, "Offering not found."},
	"appointment_not_found": {http.StatusNotFound, "Appointment not found."},
	"schedule_not_found":    {http.StatusNotFound, "Schedule entry not found."},
	"profile_not_found":     {http.StatusUnauthorized, "Invalid credentials."},
	"invalid_credentials":   {http.StatusUnauthorized, "Invalid credentials."},
	"service_not_offered":   {http.StatusBadRequest, "This stylist does not offer the selected service."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Invalid date or time."},
	"in_the_past":           {http.StatusBadRequest, "The selected time is in the past."},
	"outside_working_hours": {http.StatusBadRequest, "The stylist does not work at the selected time."},
	"stylist_unavailable":   {http.StatusBadRequest, "The stylist is unavailable at the selected time."},
	"time_conflict":         {http.StatusBadRequest, "The selected time slot was just taken."},
	"schedule_conflict":     {http.StatusBadRequest, "This interval overlaps an existing schedule entry."},
	"invalid_state":         {http.StatusBadRequest, "The appointment cannot change to that status."},
	"duplicate":             {http.StatusBadRequest, "A matching record already exists."},
}

// writeError converts any error escaping a usecase into the uniform
// response. The original cause never reaches the caller.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		if m := be.FieldMap(); m != nil {
			httpresp.Invalid(c, m)
			return
		}
		if entry, ok := businessMessages[be.Code]; ok {
			httpresp.Fail(c, entry.status, entry.message)
			return
		}
		httpresp.BadRequest(c, "The request could not be processed.")
		return
	}

	log.Printf("handler: %v", err)
	httpresp.Internal(c, "Something went wrong. Please try again.")
}

// actorFrom returns the authenticated user's id, nil on public routes.
func actorFrom(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httpresp.BadRequest(c, "Invalid identifier.")
		return uuid.Nil, false
	}
	return id, true
}
