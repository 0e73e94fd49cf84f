package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// 2025-06-02 is a Monday, inside the seeded barber's 09:00-12:00 window.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func bookAt(h, m int) BookInput {
	return BookInput{
		BarberID:  1,
		ServiceID: 10,
		Requester: schedule.Guest("Deniz Kaya", "+905551234567"),
		Start:     at(h, m),
	}
}

// ======================================================
// FAKE REPOSITORY
// ======================================================

// fakeRepo is an in-memory schedule.Repository. The mutex makes
// CreateAppointmentIfFree atomic the way the row lock does in postgres.
type fakeRepo struct {
	mu           sync.Mutex
	barbers      map[uint]*models.User
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment
	nextID       uint
}

var _ schedule.Repository = (*fakeRepo)(nil)

func seedRepo() *fakeRepo {
	f := &fakeRepo{
		barbers:      map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}

	f.barbers[1] = &models.User{
		ID:   1,
		Name: "Kerem Usta",
		Role: models.RoleBarber,
		Availability: []models.AvailabilityRange{
			{BarberID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	f.barbers[2] = &models.User{ID: 2, Name: "Deniz Kaya", Role: models.RoleCustomer}

	f.services[10] = &models.Service{ID: 10, BarberID: 1, Title: "Haircut", DurationMinutes: 30}
	// Belongs to a different barber; booking it through barber 1 must fail.
	f.services[11] = &models.Service{ID: 11, BarberID: 7, Title: "Beard Trim", DurationMinutes: 15}

	return f
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) ListDayAppointments(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || !schedule.Status(ap.Status).Blocks() {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		cp := *ap
		if svc, ok := f.services[ap.ServiceID]; ok {
			cp.Service = *svc
		}
		if ap.CustomerID != nil {
			if u, ok := f.barbers[*ap.CustomerID]; ok {
				cu := *u
				cp.Customer = &cu
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeRepo) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ex := range f.appointments {
		if ex.BarberID != ap.BarberID || !schedule.Status(ex.Status).Blocks() {
			continue
		}
		if schedule.Overlaps(ap.StartTime, ap.EndTime, ex.StartTime, ex.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetPendingByPhoneAndCode(
	ctx context.Context,
	phone string,
	code string,
	now time.Time,
) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.Status != string(schedule.StatusPending) || ap.CustomerPhone != phone {
			continue
		}
		if ap.OTP == nil || *ap.OTP != code {
			continue
		}
		if ap.OTPExpiresAt == nil || ap.OTPExpiresAt.Before(now) {
			continue
		}
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) CancelExpiredOTPAppointments(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, ap := range f.appointments {
		if ap.Status != string(schedule.StatusPending) {
			continue
		}
		if ap.OTPExpiresAt != nil && ap.OTPExpiresAt.Before(now) {
			ap.Status = string(schedule.StatusCancelled)
			cancelled := now
			ap.CancelledAt = &cancelled
			n++
		}
	}
	return n, nil
}

// -------- test-side accessors --------

func (f *fakeRepo) byPhone(phone string) (models.Appointment, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.CustomerPhone == phone {
			return *ap, true
		}
	}
	return models.Appointment{}, false
}

func (f *fakeRepo) setOTPExpiry(id uint, t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ap, ok := f.appointments[id]; ok {
		ap.OTPExpiresAt = &t
	}
}

// ======================================================
// OTHER FAKES
// ======================================================

type nopRecorder struct{}

func (nopRecorder) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopRecorder{}, zerolog.Nop())
}

type sentSMS struct {
	Phone   string
	Message string
}

type fakeSender struct {
	sent chan sentSMS
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan sentSMS, 8)}
}

func (f *fakeSender) Send(ctx context.Context, phone, message string) error {
	f.sent <- sentSMS{Phone: phone, Message: message}
	return nil
}

func (f *fakeSender) wait(timeout time.Duration) (sentSMS, bool) {
	select {
	case msg := <-f.sent:
		return msg, true
	case <-time.After(timeout):
		return sentSMS{}, false
	}
}

type fakeLimiter struct {
	allow bool
}

func (f fakeLimiter) Allow(ctx context.Context, phone string) (bool, error) {
	return f.allow, nil
}
