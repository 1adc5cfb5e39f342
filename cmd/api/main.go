package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/genai"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job board with employer, jobseeker and AI features.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup File Storage
	store, err := storage.NewS3Store(context.Background(), storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.WasabiEndpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to configure file storage", "error", err)
		os.Exit(1)
	}
	if !store.IsConfigured() {
		logger.Log.Warn("File storage not configured - uploads will be unavailable")
	}

	// 7. Setup Text Generation
	var generator genai.Generator = genai.Disabled{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := genai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		generator = gemini
	} else {
		logger.Log.Warn("AI features disabled - GEMINI_API_KEY not set")
	}

	// 8. Setup UseCases
	validate := validator.New()
	tokenManager := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authUC := usecase.NewAuthUsecase(userRepo, tokenManager)
	userUC := usecase.NewUserUsecase(userRepo, jobRepo, store)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo, applicationRepo, store, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, userRepo)
	aiUC := usecase.NewAIUsecase(generator, genai.NopScorer{}, userRepo, jobRepo, companyRepo, applicationRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		AIUC:          aiUC,
		TokenManager:  tokenManager,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
