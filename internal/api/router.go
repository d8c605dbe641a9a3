package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/sanjjiiev/Smart-Sheild/internal/api/handlers/http/accidents"
	"github.com/sanjjiiev/Smart-Sheild/internal/api/handlers/http/system"
	"github.com/sanjjiiev/Smart-Sheild/internal/api/handlers/http/telemetry"
	"github.com/sanjjiiev/Smart-Sheild/internal/config"
	"github.com/sanjjiiev/Smart-Sheild/internal/middleware"
	"github.com/sanjjiiev/Smart-Sheild/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, latest telemetry.LatestReader) *Server {
	accidentHandler := accidents.NewHandler(logger, svc.AccidentQueryService)
	telemetryHandler := telemetry.NewHandler(logger, latest)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(accidentHandler, telemetryHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(accidentHandler *accidents.Handler, telemetryHandler *telemetry.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Get("/data", telemetryHandler.TelemetryLatest)
	r.Get("/accidents", accidentHandler.AccidentZones)
	r.Get("/api/accidents", accidentHandler.AccidentList)

	r.Group(func(wr chi.Router) {
		wr.Use(middleware.Limit(5, 10, 10*time.Minute, logger))
		wr.Post("/submit-accident", accidentHandler.AccidentSubmit)
	})

	r.Get("/health", systemHandler.SystemHealth)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
