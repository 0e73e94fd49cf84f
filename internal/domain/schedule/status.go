package schedule

import "github.com/barberbook/barberbook-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Confirmed and cancelled are terminal: no transition leaves them. A
// confirmed appointment can only disappear via administrative delete.

func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Blocks reports whether an appointment in this status holds its time slot.
// Cancelled appointments never block.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}
