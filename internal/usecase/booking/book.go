package booking

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID  uint
	ServiceID uint

	Requester schedule.Requester

	Start time.Time
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books directly, without a verification gate: the appointment is
// confirmed the moment it lands.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	ap, err := prepareAppointment(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(in.Start.Location())
	ap.Status = string(schedule.StatusConfirmed)
	ap.ConfirmedAt = &now

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.CustomerID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"start":     ap.StartTime,
			"end":       ap.EndTime,
		},
	})

	return ap, nil
}

// ======================================================
// SHARED BOOKING CHECKS
// ======================================================

// prepareAppointment runs the checks shared by direct and OTP bookings and
// returns an appointment ready to persist, still without a status:
//
// 1. requester is well-formed
// 2. barber exists and really is a barber
// 3. service exists and belongs to the barber; end = start + duration
// 4. start lies within the barber's published availability for that weekday
func prepareAppointment(
	ctx context.Context,
	repo schedule.Repository,
	in BookInput,
) (*models.Appointment, error) {

	if err := in.Requester.Validate(); err != nil {
		return nil, err
	}

	barber, err := repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsBarber() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	service, err := repo.GetService(ctx, in.ServiceID)
	if err != nil || service.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := in.Start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	ranges := schedule.RangesFor(barber.Availability, in.Start)
	if !schedule.StartWithin(in.Start, ranges, in.Start) {
		return nil, httperr.ErrBusiness("unavailable")
	}

	dayStart, _ := schedule.DayBounds(in.Start)

	return &models.Appointment{
		BarberID:      in.BarberID,
		ServiceID:     service.ID,
		CustomerID:    in.Requester.CustomerID,
		CustomerName:  in.Requester.Name,
		CustomerPhone: in.Requester.Phone,
		Date:          dayStart,
		StartTime:     in.Start,
		EndTime:       end,
		Notes:         in.Notes,
	}, nil
}
