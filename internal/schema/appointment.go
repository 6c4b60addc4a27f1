package schema

import "github.com/google/uuid"

// AppointmentStatuses in lifecycle order.
var AppointmentStatuses = []string{"pending", "confirmed", "cancelled", "completed"}

// BookingInput is the final step of the public booking form: the chosen
// service, stylist, date and time slot plus the client's contact details.
type BookingInput struct {
	ServiceID   uuid.UUID
	StylistID   uuid.UUID
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string
}

func ParseBooking(v Values) (*BookingInput, FieldErrors) {
	errs := FieldErrors{}

	in := &BookingInput{
		ServiceID:   uuidField(v, errs, "service_id"),
		StylistID:   uuidField(v, errs, "stylist_id"),
		Date:        dateYMD(v, errs, "date"),
		Time:        timeHM(v, errs, "time"),
		ClientName:  requireString(v, errs, "client_name", 100),
		ClientEmail: email(v, errs, "client_email"),
		ClientPhone: phone(v, errs, "client_phone"),
		Notes:       optionalText(v, errs, "notes", 500),
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

type AppointmentStatusInput struct {
	Status string
}

func ParseAppointmentStatus(v Values) (*AppointmentStatusInput, FieldErrors) {
	errs := FieldErrors{}
	in := &AppointmentStatusInput{
		Status: enum(v, errs, "status", AppointmentStatuses...),
	}
	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
