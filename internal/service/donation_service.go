package service

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/validator"

	"github.com/google/uuid"
)

type donationService struct {
	accounts  AccountRepository
	donations DonationRepository
	queue     NotificationQueue
	scorer    Scorer
	logger    *slog.Logger
}

func NewDonationService(
	accounts AccountRepository,
	donations DonationRepository,
	queue NotificationQueue,
	scorer Scorer,
	logger *slog.Logger,
) DonationService {
	if scorer == nil {
		scorer = ExpiryWeightedScorer{Weight: 0.5}
	}
	return &donationService{
		accounts:  accounts,
		donations: donations,
		queue:     queue,
		scorer:    scorer,
		logger:    logger,
	}
}

// Create matches the donation to the best eligible NGO and reserves its
// capacity. Candidates are tried best-score-first; when a concurrent request
// wins the capacity race for a candidate, the next one is tried. Only the
// winning transaction persists anything.
func (s *donationService) Create(ctx context.Context, req domain.CreateDonationRequest) (*domain.MatchResult, error) {
	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("invalid donation request", slog.Any("error", err))
		return nil, e.Wrap("donation request", e.ErrInvalidInput)
	}

	donor, err := s.accounts.GetByName(ctx, req.DonorName)
	if err != nil {
		return nil, err
	}
	if donor.Role == domain.RoleNGO {
		s.logger.Warn("ngo tried to offer food", slog.String("name", donor.Name))
		return nil, e.Wrap("donor role", e.ErrInvalidInput)
	}

	ngos, err := s.accounts.ListEligibleNGOs(ctx, req.Quantity)
	if err != nil {
		return nil, err
	}

	for _, cand := range rankCandidates(s.scorer, donor, ngos, req.ExpiryHours) {
		d := &domain.Donation{
			ID:            uuid.New(),
			DonorID:       donor.ID,
			FoodName:      req.FoodName,
			Quantity:      req.Quantity,
			ExpiryHours:   req.ExpiryHours,
			AssignedNGOID: cand.ngo.ID,
			DistanceKM:    cand.distanceKM,
			Status:        domain.DonationAssigned,
		}

		err := s.donations.CreateAssigned(ctx, d)
		if errors.Is(err, e.ErrCapacityConflict) {
			s.logger.Warn("candidate lost capacity race, trying next",
				slog.String("ngo", cand.ngo.Name),
				slog.Int("quantity", req.Quantity),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("donation assigned",
			slog.String("donation_id", d.ID.String()),
			slog.String("donor", donor.Name),
			slog.String("ngo", cand.ngo.Name),
			slog.Float64("distance_km", cand.distanceKM),
		)

		s.enqueueNotification(ctx, donor, cand.ngo, d)

		return &domain.MatchResult{
			DonationID:  d.ID,
			AssignedNGO: cand.ngo.Name,
			DistanceKM:  cand.distanceKM,
		}, nil
	}

	s.logger.Info("no eligible ngo",
		slog.String("donor", donor.Name),
		slog.Int("quantity", req.Quantity),
	)
	return nil, e.ErrNoEligibleNGO
}

func (s *donationService) Collect(ctx context.Context, donationID uuid.UUID, ngoName string) error {
	acting, err := s.accounts.GetByName(ctx, ngoName)
	if err != nil {
		return err
	}
	if acting.Role != domain.RoleNGO {
		return e.Wrap("collect by non-ngo", e.ErrUnauthorized)
	}

	quantity, err := s.donations.Collect(ctx, donationID, acting.ID)
	if err != nil {
		return err
	}

	s.logger.Info("donation collected",
		slog.String("donation_id", donationID.String()),
		slog.String("ngo", acting.Name),
		slog.Int("quantity", quantity),
	)
	return nil
}

// enqueueNotification hands the payload to the queue with a short deadline.
// The donation is already committed; a full queue or dead Redis only costs
// the message, never the donation. The deadline is detached from the request
// context so a client disconnect after commit cannot drop the message.
func (s *donationService) enqueueNotification(ctx context.Context, donor, ngo *domain.Account, d *domain.Donation) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	payload := domain.NotificationPayload{
		NGOPhone:    ngo.Phone,
		NGOName:     ngo.Name,
		FoodName:    d.FoodName,
		Quantity:    d.Quantity,
		ExpiryHours: d.ExpiryHours,
		DonorName:   donor.Name,
		DistanceKM:  d.DistanceKM,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue notification failed",
			slog.String("ngo", ngo.Name),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("notification enqueued", slog.String("ngo", ngo.Name))
}
