package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/otp"
	"github.com/barberbook/barberbook-api/internal/sms"
)

// ======================================================
// OUTPUT
// ======================================================

type RequestOTPOutput struct {
	CustomerPhone string `json:"customer_phone"`
}

// ======================================================
// USE CASE
// ======================================================

type RequestOTPBooking struct {
	repo    schedule.Repository
	sender  sms.Sender
	limiter otp.Limiter
	audit   *audit.Dispatcher
}

func NewRequestOTPBooking(
	repo schedule.Repository,
	sender sms.Sender,
	limiter otp.Limiter,
	audit *audit.Dispatcher,
) *RequestOTPBooking {
	return &RequestOTPBooking{
		repo:    repo,
		sender:  sender,
		limiter: limiter,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute holds the slot with a pending appointment and sends the 6-digit
// code. The SMS goes out after the appointment is persisted and its failure
// never rolls the booking back: the customer can simply request again.
func (uc *RequestOTPBooking) Execute(
	ctx context.Context,
	in BookInput,
) (*RequestOTPOutput, error) {

	if in.Requester.Phone == "" {
		return nil, httperr.ErrBusiness("validation_error")
	}

	ok, err := uc.limiter.Allow(ctx, in.Requester.Phone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("too_many_requests")
	}

	ap, err := prepareAppointment(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	code, err := schedule.GenerateCode()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(schedule.CodeTTL)
	ap.Status = string(schedule.StatusPending)
	ap.OTP = &code
	ap.OTPExpiresAt = &expiresAt

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// Fire-and-forget: delivery must not block the committed booking.
	message := fmt.Sprintf(
		"Your booking verification code is %s. It expires in 5 minutes.",
		code,
	)
	go func(phone, message string) {
		_ = uc.sender.Send(context.WithoutCancel(ctx), phone, message)
	}(ap.CustomerPhone, message)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_otp_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"start":     ap.StartTime,
		},
	})

	return &RequestOTPOutput{CustomerPhone: ap.CustomerPhone}, nil
}
