package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/domain/schedule"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	tz string

	getSlots   *booking.GetAvailableSlots
	book       *booking.BookAppointment
	requestOTP *booking.RequestOTPBooking
	verifyOTP  *booking.VerifyOTPBooking
	repo       schedule.Repository
}

func NewBookingHandler(
	tz string,
	getSlots *booking.GetAvailableSlots,
	book *booking.BookAppointment,
	requestOTP *booking.RequestOTPBooking,
	verifyOTP *booking.VerifyOTPBooking,
	repo schedule.Repository,
) *BookingHandler {
	return &BookingHandler{
		tz:         tz,
		getSlots:   getSlots,
		book:       book,
		requestOTP: requestOTP,
		verifyOTP:  verifyOTP,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	CustomerID    *uint  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:MM
	Notes string `json:"notes"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (r *BookAppointmentRequest) requester() schedule.Requester {
	if r.CustomerID != nil {
		return schedule.Registered(*r.CustomerID)
	}
	return schedule.Guest(r.CustomerName, r.CustomerPhone)
}

// ======================================================
// SLOTS
// ======================================================

// GET /api/barbers/:id/slots?date=YYYY-MM-DD&service_id=N
func (h *BookingHandler) GetSlots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid barber id.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "validation_error", "date and service_id are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid service id.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid date.")
		return
	}

	slots, err := h.getSlots.Execute(c.Request.Context(), booking.GetSlotsInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_get_slots", "Could not compute slots.")
		}
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// DIRECT BOOKING
// ======================================================

// POST /api/appointments
func (h *BookingHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid request body.")
		return
	}

	start, err := parseDateTime(h.tz, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid date or time.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), booking.BookInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Requester: req.requester(),
		Start:     start,
		Notes:     req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_book", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// OTP BOOKING
// ======================================================

// POST /api/appointments/otp/request
func (h *BookingHandler) RequestOTP(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid request body.")
		return
	}

	start, err := parseDateTime(h.tz, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid date or time.")
		return
	}

	out, err := h.requestOTP.Execute(c.Request.Context(), booking.BookInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Requester: req.requester(),
		Start:     start,
		Notes:     req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_request_otp", "Could not start verification.")
		}
		return
	}

	httpresp.Created(c, out)
}

// POST /api/appointments/otp/verify
func (h *BookingHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid request body.")
		return
	}

	ap, err := h.verifyOTP.Execute(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_verify_otp", "Could not verify code.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// GET BY ID
// ======================================================

// GET /api/appointments/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid appointment id.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}
