package donor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type DonationCreator interface {
	Create(ctx context.Context, req domain.CreateDonationRequest) (*domain.MatchResult, error)
}

type Handler struct {
	logger    *slog.Logger
	Donations DonationCreator
}

func NewHandler(logger *slog.Logger, donations DonationCreator) *Handler {
	return &Handler{
		logger:    logger,
		Donations: donations,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DonationCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DonationCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating donation",
		slog.String("donor", req.DonorName),
		slog.String("food", req.FoodName),
		slog.Int("quantity", req.Quantity),
		slog.Int("expiry_hours", req.ExpiryHours),
	)

	result, err := h.Donations.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("donation matched",
		slog.String("donation_id", result.DonationID.String()),
		slog.String("assigned_ngo", result.AssignedNGO),
	)
	h.writeJSON(w, http.StatusCreated, result)
}
