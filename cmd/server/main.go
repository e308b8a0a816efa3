package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"court-scheduling-backend/internal/api/middleware"
	"court-scheduling-backend/internal/api/routes"
	"court-scheduling-backend/internal/config"
	"court-scheduling-backend/internal/database"
	"court-scheduling-backend/internal/jobs"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"
	"court-scheduling-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "court-scheduling-backend/docs" // This is needed for swag
)

//go:generate swag init -g cmd/server/main.go -o docs --dir ../../

//	@title			Court Scheduling API
//	@version		1.0
//	@description	Case intake, hearing allocation and adjournment negotiation for district courts.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		logrus.Fatal("Failed to apply migrations:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Notifications go to the log and to websocket subscribers
	hub := notification.NewHub(64, middleware.CheckWebsocketOrigin(cfg))
	defer hub.Close()
	publisher := notification.Fanout{notification.LogPublisher{}, hub}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, hub, publisher)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Hearing reminders
	reminders, err := jobs.NewReminderRegistry(cfg.ReminderCron, cfg.Location(),
		service.NewCalendarService(repository.NewStore(db, cfg.TxMaxRetries)), publisher)
	if err != nil {
		logrus.Fatal("Failed to create reminder registry:", err)
	}
	for _, district := range cfg.ReminderDistricts {
		if err := reminders.Register(district); err != nil {
			logrus.Fatalf("Failed to register reminders for %s: %v", district, err)
		}
	}
	reminders.Start()
	defer reminders.Stop()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
