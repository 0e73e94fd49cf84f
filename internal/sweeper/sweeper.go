package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/barberbook/barberbook-api/internal/domain/schedule"
)

// Sweeper cancels pending appointments whose verification code expired
// without ever being confirmed, so abandoned OTP requests stop holding
// slots. Verification checks expiry on its own; the sweep is hygiene.
type Sweeper struct {
	repo schedule.Repository
	cron *cron.Cron
	log  zerolog.Logger
}

func New(repo schedule.Repository, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		repo: repo,
		cron: cron.New(),
		log:  log,
	}
}

// Start schedules the sweep every minute and runs the cron in background.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.repo.CancelExpiredOTPAppointments(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("otp sweep failed")
		return
	}

	if n > 0 {
		s.log.Info().Int64("cancelled", n).Msg("expired otp appointments swept")
	}
}
