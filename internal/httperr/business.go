package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Booking error taxonomy. Anything not listed falls back to 400.
var statusByCode = map[string]int{
	"barber_not_found":        http.StatusNotFound,
	"service_not_found":       http.StatusNotFound,
	"appointment_not_found":   http.StatusNotFound,
	"invalid_role":            http.StatusUnprocessableEntity,
	"unavailable":             http.StatusUnprocessableEntity,
	"time_conflict":           http.StatusConflict,
	"invalid_or_expired_code": http.StatusBadRequest,
	"validation_error":        http.StatusBadRequest,
	"invalid_state":           http.StatusBadRequest,
	"too_many_requests":       http.StatusTooManyRequests,
}

// WriteBusiness maps a BusinessError onto its HTTP status and writes it.
// Returns false when err is not a business error, so callers can fall
// through to a 500.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	Write(c, status, be.Code, http.StatusText(status))
	return true
}
