package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AccountRegistrar interface {
	Register(ctx context.Context, req domain.RegisterAccountRequest) (uuid.UUID, error)
}

type HomeStatsGetter interface {
	Home(ctx context.Context) (*domain.HomeStats, error)
}

type Handler struct {
	logger   *slog.Logger
	Accounts AccountRegistrar
	Stats    HomeStatsGetter
}

func NewHandler(logger *slog.Logger, accounts AccountRegistrar, stats HomeStatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Accounts: accounts,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AccountRegister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AccountRegister", slog.String("remote", r.RemoteAddr))

	var req domain.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("registering account",
		slog.String("name", req.Name),
		slog.String("role", string(req.Role)),
	)

	id, err := h.Accounts.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("account registered", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) HomeStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HomeStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.Home(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
