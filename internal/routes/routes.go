package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miamente/miamente-sub002/internal/audit"
	"github.com/miamente/miamente-sub002/internal/cache"
	"github.com/miamente/miamente-sub002/internal/config"
	"github.com/miamente/miamente-sub002/internal/handlers"
	infraRepo "github.com/miamente/miamente-sub002/internal/infra/repository"
	"github.com/miamente/miamente-sub002/internal/middleware"
	"github.com/miamente/miamente-sub002/internal/notify"
	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// Deps carries the process-wide singletons built in main. Everything
// downstream receives them by injection; there is no ambient state.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Log      *zap.Logger
	Redis    *redis.Client
	Notifier *notify.Dispatcher
}

// RegisterRoutes wires repositories, use cases and handlers, and
// returns the cleanup use case so main can hand it to the sweeper.
func RegisterRoutes(r *gin.Engine, deps Deps) *ucBooking.CleanupHeldSlots {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	availabilityCache := cache.New(deps.Redis, deps.Log)

	// ======================================================
	// USE CASES — BOOKING CORE
	// ======================================================
	generateSlotsUC := ucBooking.NewGenerateSlots(
		bookingRepo,
		auditDispatcher,
		deps.Log,
		deps.Cfg.BusinessTimezone,
	)

	queryAvailabilityUC := ucBooking.NewQueryAvailability(
		bookingRepo,
		deps.Cfg.BusinessTimezone,
	)

	bookSlotUC := ucBooking.NewBookSlot(
		bookingRepo,
		auditDispatcher,
		deps.Cfg.PaymentProvider,
		deps.Cfg.PaymentCurrency,
	)

	confirmPaymentUC := ucBooking.NewConfirmPayment(
		bookingRepo,
		auditDispatcher,
		deps.Notifier,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		deps.Notifier,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	cleanupUC := ucBooking.NewCleanupHeldSlots(
		bookingRepo,
		auditDispatcher,
		deps.Log,
		time.Duration(deps.Cfg.HoldTimeoutMinutes)*time.Minute,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(queryAvailabilityUC, availabilityCache, deps.Log)
	slotHandler := handlers.NewSlotHandler(generateSlotsUC, queryAvailabilityUC, deps.Log)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookSlotUC,
		confirmPaymentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		deps.Log,
	)
	adminHandler := handlers.NewAdminHandler(deps.DB, cleanupUC, deps.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/public/professionals/:id/availability", availabilityHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Cfg))
		{
			secured.POST("/me/professionals/:id/slots/generate", slotHandler.Generate)
			secured.GET("/me/professionals/:id/slots", slotHandler.List)

			secured.POST("/me/appointments", appointmentHandler.Book)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("/cleanup-held-slots", adminHandler.CleanupHeldSlots)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}
	}

	return cleanupUC
}
