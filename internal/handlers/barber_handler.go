package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/usecase/booking"
)

// BarberHandler serves the authenticated barber's own agenda.
type BarberHandler struct {
	tz string

	listByDate *booking.ListAppointmentsByDate
	cancel     *booking.CancelAppointment
	del        *booking.DeleteAppointment
}

func NewBarberHandler(
	tz string,
	listByDate *booking.ListAppointmentsByDate,
	cancel *booking.CancelAppointment,
	del *booking.DeleteAppointment,
) *BarberHandler {
	return &BarberHandler{
		tz:         tz,
		listByDate: listByDate,
		cancel:     cancel,
		del:        del,
	}
}

// GET /api/me/appointments?date=YYYY-MM-DD
func (h *BarberHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "validation_error", "date is required.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid date.")
		return
	}

	appointments, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// PATCH /api/me/appointments/:id/cancel
func (h *BarberHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid appointment id.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel", "Could not cancel appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// DELETE /api/me/appointments/:id
func (h *BarberHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Invalid appointment id.")
		return
	}

	if err := h.del.Execute(c.Request.Context(), adminID, uint(id)); err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_delete", "Could not delete appointment.")
		}
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
