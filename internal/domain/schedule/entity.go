package schedule

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Confirm moves a pending appointment to confirmed and clears any OTP
// state so the code can never match a second time.
func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	ap.OTP = nil
	ap.OTPExpiresAt = nil
	return nil
}
