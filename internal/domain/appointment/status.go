package appointment

import (
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	return nil
}
