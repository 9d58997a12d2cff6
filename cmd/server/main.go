package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"care-connect.backend/internal/config"
	"care-connect.backend/internal/infrastructure/email"
	"care-connect.backend/internal/infrastructure/jobs"
	"care-connect.backend/internal/infrastructure/repositories"
	"care-connect.backend/internal/interfaces/http/handlers"
	"care-connect.backend/internal/interfaces/http/middleware"
	"care-connect.backend/internal/usecases"
	"care-connect.backend/pkg/jwt"
	"care-connect.backend/pkg/logger"
	"care-connect.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	verifTokenRepo := repositories.NewVerificationTokenRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	workerRepo := repositories.NewWorkerProfileRepository(db)
	requirementRepo := repositories.NewVerificationRequirementRepository(db)
	clientRepo := repositories.NewClientProfileRepository(db)
	coordRepo := repositories.NewCoordinatorProfileRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize mailer
	mailer := email.NewSMTPSender(cfg)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(
		userRepo, sessionRepo, verifTokenRepo,
		workerRepo, requirementRepo, clientRepo, coordRepo,
		auditLogRepo, jwtService, sessionStore, mailer,
		usecases.LockoutPolicy{
			MaxFailedLogins: cfg.Lockout.MaxFailedLogins,
			LockoutDuration: cfg.Lockout.LockoutDuration,
		},
	)
	accountUsecase := usecases.NewAccountUsecase(accountRepo, auditLogRepo)
	workerUsecase := usecases.NewWorkerProfileUsecase(workerRepo, requirementRepo, auditLogRepo)
	verificationUsecase := usecases.NewVerificationUsecase(workerRepo, requirementRepo, userRepo, auditLogRepo, mailer)
	profileUsecase := usecases.NewProfileUsecase(clientRepo, coordRepo, auditLogRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, workerRepo, requirementRepo, clientRepo, coordRepo, auditLogRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	workerHandler := handlers.NewWorkerHandler(workerUsecase, verificationUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewRequirementExpiryJob(requirementRepo, auditLogRepo)
	go expiryJob.Start(ctx)

	cleanupJob := jobs.NewSessionCleanupJob(sessionRepo)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		accountHandler:      accountHandler,
		workerHandler:       workerHandler,
		verificationHandler: verificationHandler,
		profileHandler:      profileHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cleanupJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 CareConnect Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
