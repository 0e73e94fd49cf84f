package booking

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type GetSlotsInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailableSlots struct {
	repo schedule.Repository
}

func NewGetAvailableSlots(repo schedule.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) ([]schedule.Slot, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsBarber() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || service.BarberID != in.BarberID {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ranges := schedule.RangesFor(barber.Availability, in.Date)
	if len(ranges) == 0 {
		return []schedule.Slot{}, nil
	}

	dayStart, dayEnd := schedule.DayBounds(in.Date)
	appointments, err := uc.repo.ListDayAppointments(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, schedule.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute

	return schedule.BuildSlots(in.Date, ranges, duration, busy), nil
}
