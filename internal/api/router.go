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

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/donor"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/ngo"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/public"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/system"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/config"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/middleware"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	donorHandler := donor.NewHandler(logger, svc.Donations)
	ngoHandler := ngo.NewHandler(logger, svc.Donations, svc.Accounts, svc.Stats)
	publicHandler := public.NewHandler(logger, svc.Accounts, svc.Stats)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, donorHandler, ngoHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	donorHandler *donor.Handler,
	ngoHandler *ngo.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/accounts", func(ar chi.Router) {
			ar.Use(middleware.Limit(5, 10, 10*time.Minute, logger))
			ar.Post("/", publicHandler.AccountRegister)
		})

		api.Route("/donations", func(dr chi.Router) {
			dr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			dr.Post("/", donorHandler.DonationCreate)
			dr.Post("/{id}/collect", ngoHandler.DonationCollect)
		})

		// OPS: capacity control and per-NGO reporting
		api.Route("/ngos", func(nr chi.Router) {
			nr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			nr.Put("/{name}/capacity", ngoHandler.CapacityReset)
			nr.Get("/{name}/dashboard", ngoHandler.Dashboard)
		})

		api.Get("/stats", publicHandler.HomeStats)
		api.Get("/health", systemHandler.SystemHealth)
	})

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
