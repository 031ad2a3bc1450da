package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/database"
	"github.com/studyzap/studyzap-backend/internal/handler"
	"github.com/studyzap/studyzap-backend/internal/logger"
	"github.com/studyzap/studyzap-backend/internal/repository"
	"github.com/studyzap/studyzap-backend/internal/router"
	"github.com/studyzap/studyzap-backend/internal/service"
	"github.com/studyzap/studyzap-backend/internal/validator"
	"github.com/studyzap/studyzap-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting StudyZap Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	paperRepo := repository.NewPaperRepository(pool)
	moduleRepo := repository.NewModuleRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	genRepo := repository.NewGenerationRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	paperService := service.NewPaperService(paperRepo, rdb, cfg, log)
	sessionService := service.NewSessionService(paperService, resultRepo, log)
	moduleService := service.NewModuleService(moduleRepo, paperRepo, log)
	materialService := service.NewMaterialService(cfg, materialRepo)
	generationService := service.NewGenerationService(genRepo, moduleRepo, materialRepo, rdb, log)
	resultService := service.NewResultService(resultRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Module:     handler.NewModuleHandler(moduleService),
		Paper:      handler.NewPaperHandler(paperService),
		Session:    handler.NewSessionHandler(sessionService),
		Material:   handler.NewMaterialHandler(materialService),
		Generation: handler.NewGenerationHandler(generationService),
		Result:     handler.NewResultHandler(resultService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	generationWorker := worker.NewGenerationWorker(genRepo, paperRepo, rdb, cfg.GenerationDelay, log)
	go generationWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the generation worker and let any in-flight job finish.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
