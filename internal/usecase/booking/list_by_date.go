package booking

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/dto"
)

type ListAppointmentsByDate struct {
	repo schedule.Repository
}

func NewListAppointmentsByDate(
	repo schedule.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	dayStart, dayEnd := schedule.DayBounds(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		name := ap.CustomerName
		if ap.Customer != nil {
			name = ap.Customer.Name
		}

		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			CustomerName:  name,
			CustomerPhone: ap.CustomerPhone,
			ServiceTitle:  ap.Service.Title,
		})
	}

	return out, nil
}
