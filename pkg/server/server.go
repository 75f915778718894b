package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analysishandler "bizlens/pkg/api/analysis"
	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/core/report"
	"bizlens/pkg/core/store"
	bizlensmiddleware "bizlens/pkg/server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// WebAPI is the HTTP front of the analysis pipeline.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// Config wires the server's address, shutdown deadline, and dependencies.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Benchmarks      *benchmark.Store
	Reports         *store.ReportRepo // nil disables persistence endpoints
}

// NewWebAPI builds the router and handlers.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	assembler := report.NewAssembler(config.Benchmarks)
	handler := analysishandler.NewHandler(assembler, config.Reports)

	router := chi.NewRouter()
	router.Use(bizlensmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":            "ok",
			"benchmark_version": config.Benchmarks.Version(),
		})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analysis/report", handler.CreateReport)
		r.Post("/analysis/score", handler.Score)
		r.Get("/reports/{businessID}", handler.GetReport)
		r.Get("/reports/{businessID}/html", handler.GetReportHTML)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

// Router exposes the mux, primarily for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start serves until an error or a termination signal, then shuts down
// gracefully within the configured timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		if err := w.server.Shutdown(ctx); err != nil {
			w.server.Close()
			return err
		}
		return nil
	}
}
