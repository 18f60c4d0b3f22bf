package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthconnect/config"
	deliveryHttp "healthconnect/internal/delivery/http"
	"healthconnect/internal/delivery/http/handler"
	"healthconnect/internal/delivery/http/middleware"
	"healthconnect/internal/infrastructure/cache"
	"healthconnect/internal/infrastructure/database"
	"healthconnect/internal/repository"
	"healthconnect/internal/service"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/jwt"
	"healthconnect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *mongo.Database
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize document store
	db, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	app.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	if err := database.SeedDoctors(ctx, repository.NewDoctorRepository(db)); err != nil {
		return nil, fmt.Errorf("failed to seed doctors: %w", err)
	}

	// Initialize Redis (session store)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *mongo.Database, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	// Initialize JWT service and validator
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	reportRepo := repository.NewMedicalReportRepository(db)

	// Initialize notification transports. Missing credentials disable the
	// channel; they never prevent startup.
	emailSender := service.NewEmailSender(cfg.Email)
	smsSender := service.NewSMSSender(cfg.SMS)
	if !emailSender.Enabled() {
		log.Warn("Email transport not configured, email notifications disabled")
	}
	if !smsSender.Enabled() {
		log.Warn("SMS transport not configured, SMS notifications disabled")
	}
	notifier := service.NewNotifier(emailSender, smsSender, log)

	// Initialize session store
	sessionService := service.NewSessionService(redisClient, log, cfg.Session.TTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, sessionService, jwtService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, notifier)
	consultationUsecase := usecase.NewConsultationUsecase(log, cfg.Consultation, consultationRepo, notifier)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	chatbotUsecase := usecase.NewChatbotUsecase()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.Session.CookieName, cfg.Session.TTL)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	chatbotHandler := handler.NewChatbotHandler(chatbotUsecase, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, jwtService, cfg.Session.CookieName)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		consultationHandler,
		reportHandler,
		doctorHandler,
		chatbotHandler,
		sessionMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (document store, redis)
func (app *App) Close() {
	if app.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.DB.Client().Disconnect(ctx); err != nil {
			logrus.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
