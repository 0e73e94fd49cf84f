package schedule

import (
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/validators"
)

// Requester identifies who an appointment is for: either a registered
// customer (by id) or a walk-in guest reachable by name and phone. Exactly
// one of the two shapes must be filled in.
type Requester struct {
	CustomerID *uint
	Name       string
	Phone      string
}

func Registered(customerID uint) Requester {
	return Requester{CustomerID: &customerID}
}

func Guest(name, phone string) Requester {
	return Requester{Name: name, Phone: phone}
}

func (r Requester) IsGuest() bool {
	return r.CustomerID == nil
}

func (r Requester) Validate() error {
	if r.CustomerID != nil {
		return nil
	}
	if r.Name == "" || !validators.IsPhoneValid(r.Phone) {
		return httperr.ErrBusiness("validation_error")
	}
	return nil
}
