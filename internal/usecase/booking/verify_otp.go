package booking

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

type VerifyOTPBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewVerifyOTPBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *VerifyOTPBooking {
	return &VerifyOTPBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirms the pending appointment matching (phone, code), provided
// the code has not expired. A mismatched or expired code leaves the record
// untouched; the sweeper reclaims abandoned ones later. Confirmation clears
// the code, so a second verify with the same code fails.
func (uc *VerifyOTPBooking) Execute(
	ctx context.Context,
	phone string,
	code string,
) (*models.Appointment, error) {

	if phone == "" || code == "" {
		return nil, httperr.ErrBusiness("validation_error")
	}

	now := time.Now()

	ap, err := uc.repo.GetPendingByPhoneAndCode(ctx, phone, code, now)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_or_expired_code")
	}

	if err := schedule.Confirm(ap, now); err != nil {
		return nil, httperr.ErrBusiness("invalid_or_expired_code")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.CustomerID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
