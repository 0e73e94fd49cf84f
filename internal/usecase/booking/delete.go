package booking

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the record outright. This is the administrative escape
// hatch: it is the only way a confirmed appointment goes away.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"status": ap.Status,
			"start":  ap.StartTime,
		},
	})

	return nil
}
