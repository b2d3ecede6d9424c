// @title Vía Propósito API
// @version 1.0
// @description Purpose-profile questionnaire: scoring, result emails and the admin dashboard.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "via-proposito/cmd/api/docs"
	"via-proposito/internal/adapter"
	"via-proposito/internal/adapter/mailer"
	"via-proposito/internal/cache"
	"via-proposito/internal/config"
	"via-proposito/internal/database"
	"via-proposito/internal/domain"
	"via-proposito/internal/handler"
	"via-proposito/internal/logger"
	"via-proposito/internal/middleware"
	"via-proposito/internal/questionbank"
	"via-proposito/internal/repository"
	"via-proposito/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it dashboard stats are computed on every request.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	var resultMailer domain.Mailer
	if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" {
		resultMailer = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		appLogger.Warn("SMTP credentials not set, result emails are disabled")
	}

	bank, err := questionbank.Default()
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}

	// Repositories
	testResultRepository := repository.NewSQLXTestResultRepository(db)
	statsRepository := repository.NewSQLXStatsRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	statsCache := service.NewStatsCacheService(cacheAdapter, cfg.Cache.StatsTTL)
	questionService, err := service.NewQuestionService(bank)
	if err != nil {
		appLogger.Fatal("Failed to create QuestionService", zap.Error(err))
	}
	testResultService := service.NewTestResultService(testResultRepository, txManager, statsCache, cfg.Quiz.AllowRetakes)
	reportService := service.NewReportService(testResultRepository, resultMailer, cfg.App.PublicURL)
	adminAuthService := service.NewAdminAuthService(cfg.Admin)
	statsService := service.NewStatsService(statsRepository, testResultRepository, statsCache)
	healthService := service.NewHealthService(statsRepository, cacheAdapter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.Routes{
		Quiz:           handler.NewQuizHandler(questionService, testResultService, reportService),
		Auth:           handler.NewAuthHandler(adminAuthService),
		Admin:          handler.NewAdminHandler(statsService),
		Health:         handler.NewHealthHandler(healthService),
		AdminAuth:      adminAuthService,
		LoginRateLimit: cfg.Admin.LoginRateLimit,
	}.Register(app.Group("/api"))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
