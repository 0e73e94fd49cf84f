package sms

import (
	"context"

	"github.com/rs/zerolog"
)

// Sender delivers a text message to a phone number. Real transport
// (Twilio etc.) lives behind this interface; delivery failure is reported
// to the caller but is never fatal to a booking.
type Sender interface {
	Send(ctx context.Context, phone string, message string) error
}

// LogSender writes outgoing messages to the log instead of a carrier.
// Used in development and wherever no SMS provider is configured.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, phone string, message string) error {
	s.log.Info().
		Str("phone", phone).
		Str("message", message).
		Msg("sms dispatched")
	return nil
}

var _ Sender = (*LogSender)(nil)
