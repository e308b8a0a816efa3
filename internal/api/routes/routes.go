package routes

import (
	"context"
	"fmt"

	"court-scheduling-backend/internal/api/handlers"
	"court-scheduling-backend/internal/api/middleware"
	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/config"
	"court-scheduling-backend/internal/database"
	"court-scheduling-backend/internal/database/models"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"
	"court-scheduling-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Events are
// delivered through publisher; hub serves the websocket endpoint.
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub *notification.Hub, publisher notification.Publisher) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Timeout(cfg.RequestTimeout()))

	// Initialize validator
	validator := service.NewValidator()

	// Storage
	store := repository.NewStore(db, cfg.TxMaxRetries)

	// Initialize services
	caseService := service.NewCaseService(store, validator)
	schedulerService := service.NewSchedulerService(store, cfg.Policy(), publisher, validator)
	adjournmentService := service.NewAdjournmentService(store, schedulerService, publisher, validator)
	calendarService := service.NewCalendarService(store)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry())
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, func(ctx context.Context) (int64, error) {
		return database.MigrationVersion(ctx, db)
	}, hub.Subscribers)
	caseHandler := handlers.NewCaseHandler(caseService)
	scheduleHandler := handlers.NewScheduleHandler(schedulerService, calendarService)
	adjournmentHandler := handlers.NewAdjournmentHandler(adjournmentService)
	notificationHandler := handlers.NewNotificationHandler(hub)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/validate", authHandler.ValidateToken)
		if !cfg.IsProduction() {
			authGroup.POST("/dev-token", authHandler.IssueDevToken)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	lawyer := auth.RequireRole(models.UserRoleLawyer)
	client := auth.RequireRole(models.UserRoleClient)
	scheduler := auth.RequireRole(models.UserRoleCourtScheduler)

	{
		// Case routes
		cases := v1.Group("/cases")
		{
			cases.POST("", lawyer, caseHandler.FileCase)
			cases.GET("", caseHandler.ListCases)
			cases.GET("/:id", caseHandler.GetCase)
			cases.POST("/:id/schedule-requests", lawyer, caseHandler.RequestScheduling)
			cases.GET("/:id/hearings", scheduleHandler.CaseHearings)
		}

		// Scheduling queue routes
		requests := v1.Group("/schedule-requests", scheduler)
		{
			requests.GET("", scheduleHandler.ListQueue)
			requests.POST("/:id/schedule", scheduleHandler.ScheduleCase)
		}

		// Calendar routes
		v1.GET("/scheduled-entries", scheduleHandler.ListScheduledEntries)
		v1.GET("/slots", scheduleHandler.AvailableSlots)
		v1.GET("/slots/conflicts", scheduleHandler.CheckConflict)
		v1.GET("/calendar/:district/:year/:month", scheduleHandler.MonthCalendar)

		// Adjournment routes
		adjournments := v1.Group("/adjournments")
		{
			adjournments.POST("", client, adjournmentHandler.CreateAdjournment)
			adjournments.GET("", adjournmentHandler.ListAdjournments)
			adjournments.GET("/:id", adjournmentHandler.GetAdjournment)
			adjournments.POST("/:id/accept", scheduler, adjournmentHandler.AcceptAdjournment)
			adjournments.POST("/:id/reject", scheduler, adjournmentHandler.RejectAdjournment)
		}

		// Live notifications
		v1.GET("/notifications/ws", notificationHandler.Subscribe)
	}

	return router, nil
}
