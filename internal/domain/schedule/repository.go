package schedule

import (
	"context"
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// -------- Directory (read-only to the core) --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointments (day view) --------
	ListDayAppointments(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsForPeriod returns every appointment in the window,
	// cancelled ones included, with customer and service loaded.
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointments (create / conflict) --------

	// CreateAppointmentIfFree runs the overlap check and the insert as one
	// atomic operation, serialized per barber. Two concurrent bookings for
	// overlapping intervals must not both succeed; the loser gets the
	// time_conflict business error.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointments (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetPendingByPhoneAndCode(
		ctx context.Context,
		phone string,
		code string,
		now time.Time,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Hygiene --------
	CancelExpiredOTPAppointments(
		ctx context.Context,
		now time.Time,
	) (int64, error)
}
