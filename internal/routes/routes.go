package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/audit"
	"github.com/luminasalon/salon-manager/internal/cache"
	"github.com/luminasalon/salon-manager/internal/config"
	"github.com/luminasalon/salon-manager/internal/handlers"
	"github.com/luminasalon/salon-manager/internal/identity"
	infraRepo "github.com/luminasalon/salon-manager/internal/infra/repository"
	"github.com/luminasalon/salon-manager/internal/mail"
	"github.com/luminasalon/salon-manager/internal/middleware"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/reminder"
	"github.com/luminasalon/salon-manager/internal/storage"
	"github.com/luminasalon/salon-manager/internal/timezone"
	ucBooking "github.com/luminasalon/salon-manager/internal/usecase/booking"
	ucCatalog "github.com/luminasalon/salon-manager/internal/usecase/catalog"
	ucPlanner "github.com/luminasalon/salon-manager/internal/usecase/planner"
	ucRoster "github.com/luminasalon/salon-manager/internal/usecase/roster"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine. The returned reminder scheduler is started by the caller.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) *reminder.Scheduler {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	stylistRepo := infraRepo.NewStylistGormRepository(db)
	offeringRepo := infraRepo.NewOfferingGormRepository(db)
	profileRepo := infraRepo.NewProfileGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	unavailRepo := infraRepo.NewUnavailabilityGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	viewCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	mailer := mail.New(cfg)
	provider := identity.NewHTTPProvider(cfg)
	uploader := storage.New(cfg)
	loc := timezone.Location(cfg.SalonTimezone)

	// ======================================================
	// USE CASES
	// ======================================================
	catalogUC := ucCatalog.New(serviceRepo, auditDispatcher)
	rosterUC := ucRoster.New(stylistRepo, offeringRepo, profileRepo, provider, auditDispatcher)
	plannerUC := ucPlanner.New(scheduleRepo, unavailRepo, auditDispatcher, loc)
	bookingUC := ucBooking.New(
		appointmentRepo,
		serviceRepo,
		stylistRepo,
		offeringRepo,
		scheduleRepo,
		unavailRepo,
		mailer,
		auditDispatcher,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(provider, profileRepo, cfg)
	serviceHandler := handlers.NewServiceHandler(catalogUC, viewCache)
	stylistHandler := handlers.NewStylistHandler(rosterUC, uploader, viewCache)
	offeringHandler := handlers.NewOfferingHandler(rosterUC, viewCache)
	appointmentHandler := handlers.NewAppointmentHandler(bookingUC)
	scheduleHandler := handlers.NewScheduleHandler(plannerUC)
	unavailabilityHandler := handlers.NewUnavailabilityHandler(plannerUC)
	publicHandler := handlers.NewPublicHandler(catalogUC, rosterUC, bookingUC, viewCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	public := r.Group("/api/public")
	{
		public.GET("/services", publicHandler.ListServices)
		public.GET("/stylists", publicHandler.ListStylists)
		public.GET("/stylists/:id/services", publicHandler.StylistServices)
		public.GET("/availability", publicHandler.Availability)
		public.POST("/appointments", publicHandler.CreateAppointment)
	}

	r.POST("/api/auth/login", authHandler.Login)

	// ======================================================
	// ADMIN ROUTES
	// ======================================================
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/services", serviceHandler.List)
		admin.GET("/services/:id", serviceHandler.Get)
		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)

		admin.GET("/stylists", stylistHandler.List)
		admin.GET("/stylists/:id", stylistHandler.Get)
		admin.POST("/stylists", stylistHandler.Create)
		admin.PUT("/stylists/:id", stylistHandler.Update)
		admin.POST("/stylists/:id/picture", stylistHandler.UploadPicture)
		admin.DELETE("/stylists/:id", stylistHandler.Delete)

		admin.GET("/offerings", offeringHandler.List)
		admin.GET("/stylists/:id/offerings", offeringHandler.ListByStylist)
		admin.POST("/offerings", offeringHandler.Create)
		admin.PUT("/offerings/:id", offeringHandler.Update)
		admin.DELETE("/offerings/:id", offeringHandler.Delete)

		admin.GET("/appointments", appointmentHandler.ListForDay)
		admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		admin.GET("/schedules", scheduleHandler.Week)
		admin.POST("/schedules", scheduleHandler.Create)
		admin.PUT("/schedules/:id", scheduleHandler.Update)
		admin.DELETE("/schedules/:id", scheduleHandler.Delete)

		admin.GET("/unavailability", unavailabilityHandler.List)
		admin.POST("/unavailability", unavailabilityHandler.Create)
		admin.DELETE("/unavailability/:id", unavailabilityHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	return reminder.New(appointmentRepo, mailer, loc)
}
