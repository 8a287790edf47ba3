package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/lexitrain/backend/internal/api"
	"github.com/lexitrain/backend/internal/config"
	"github.com/lexitrain/backend/internal/janitor"
	"github.com/lexitrain/backend/internal/service"
	"github.com/lexitrain/backend/internal/store"
	"github.com/lexitrain/backend/internal/worker"

	_ "github.com/lexitrain/backend/docs" // generated swagger docs
)

// @title           LexiTrain API
// @version         1.0
// @description     Vocabulary practice backend — build word sets, generate drills, and run practice sessions.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		println("failed to load config:", err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)
	defer logger.Sync()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	pool := worker.NewPool(cfg.Practice.PersistWorkers, 16)
	defer pool.Shutdown()

	practice := service.NewPracticeService(db, pool, logger)
	handler := api.NewHandler(db, practice, logger)

	sweeper := janitor.New(practice, cfg.Practice.SessionTTL, cfg.Practice.JanitorInterval, logger)
	sweeper.Start()
	defer sweeper.Stop()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           logged,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("address", cfg.Server.Address))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		println("failed to build logger:", err.Error())
		os.Exit(1)
	}
	return logger
}
