package booking

import (
	"time"

	"github.com/luminasalon/salon-manager/internal/audit"
	appt "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/domain/roster"
	scheduledomain "github.com/luminasalon/salon-manager/internal/domain/schedule"
)

// Mailer is the outbound-email dependency; sends are fire-and-forget.
type Mailer interface {
	Send(to, subject, htmlBody string)
}

// Booking drives the public booking flow and appointment lifecycle.
type Booking struct {
	appointments appt.Repository
	services     catalog.Repository
	stylists     roster.StylistRepository
	offerings    roster.OfferingRepository
	schedules    scheduledomain.Repository
	unavail      scheduledomain.UnavailabilityRepository
	mailer       Mailer
	audit        *audit.Dispatcher
	loc          *time.Location
}

func New(
	appointments appt.Repository,
	services catalog.Repository,
	stylists roster.StylistRepository,
	offerings roster.OfferingRepository,
	schedules scheduledomain.Repository,
	unavail scheduledomain.UnavailabilityRepository,
	mailer Mailer,
	audit *audit.Dispatcher,
	loc *time.Location,
) *Booking {
	return &Booking{
		appointments: appointments,
		services:     services,
		stylists:     stylists,
		offerings:    offerings,
		schedules:    schedules,
		unavail:      unavail,
		mailer:       mailer,
		audit:        audit,
		loc:          loc,
	}
}
