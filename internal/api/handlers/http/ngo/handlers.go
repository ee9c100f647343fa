package ngo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type DonationCollector interface {
	Collect(ctx context.Context, donationID uuid.UUID, ngoName string) error
}

type CapacityResetter interface {
	ResetCapacity(ctx context.Context, ngoName string, capacity int) error
}

type DashboardGetter interface {
	NGODashboard(ctx context.Context, ngoName string) (*domain.NGODashboard, error)
}

type Handler struct {
	logger    *slog.Logger
	Donations DonationCollector
	Accounts  CapacityResetter
	Stats     DashboardGetter
}

func NewHandler(logger *slog.Logger, donations DonationCollector, accounts CapacityResetter, stats DashboardGetter) *Handler {
	return &Handler{
		logger:    logger,
		Donations: donations,
		Accounts:  accounts,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DonationCollect(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DonationCollect", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.CollectDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.NGOName == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ngo_name required"})
		return
	}

	if err := h.Donations.Collect(r.Context(), id, req.NGOName); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("donation collected", slog.String("id", id.String()), slog.String("ngo", req.NGOName))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.DonationCollected)})
}

func (h *Handler) CapacityReset(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CapacityReset", slog.String("remote", r.RemoteAddr))

	name := chi.URLParam(r, "name")

	var req domain.ResetCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Capacity < 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "capacity must be >= 0"})
		return
	}

	if err := h.Accounts.ResetCapacity(r.Context(), name, req.Capacity); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("capacity reset", slog.String("ngo", name), slog.Int("capacity", req.Capacity))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Dashboard", slog.String("remote", r.RemoteAddr))

	name := chi.URLParam(r, "name")

	dashboard, err := h.Stats.NGODashboard(r.Context(), name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dashboard)
}
