package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/handlers"
	infraRepo "github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/otp"
	"github.com/barberbook/barberbook-api/internal/sms"
	ucBooking "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

// Deps carries the externally-constructed collaborators.
type Deps struct {
	Sender  sms.Sender
	Limiter otp.Limiter
	Log     zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	getSlotsUC := ucBooking.NewGetAvailableSlots(bookingRepo)

	bookUC := ucBooking.NewBookAppointment(
		bookingRepo,
		auditDispatcher,
	)

	requestOTPUC := ucBooking.NewRequestOTPBooking(
		bookingRepo,
		deps.Sender,
		deps.Limiter,
		auditDispatcher,
	)

	verifyOTPUC := ucBooking.NewVerifyOTPBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	deleteUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		cfg.Timezone,
		getSlotsUC,
		bookUC,
		requestOTPUC,
		verifyOTPUC,
		bookingRepo,
	)

	barberHandler := handlers.NewBarberHandler(
		cfg.Timezone,
		listByDateUC,
		cancelUC,
		deleteUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers/:id/slots", bookingHandler.GetSlots)

		api.POST("/appointments", bookingHandler.Book)
		api.GET("/appointments/:id", bookingHandler.GetByID)

		api.POST("/appointments/otp/request", bookingHandler.RequestOTP)
		api.POST("/appointments/otp/verify", bookingHandler.VerifyOTP)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/appointments", barberHandler.ListByDate)
			secured.PATCH("/me/appointments/:id/cancel", barberHandler.Cancel)

			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.DELETE("/me/appointments/:id", barberHandler.Delete)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
