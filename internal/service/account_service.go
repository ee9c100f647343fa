package service

import (
	"context"

	"log/slog"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/validator"

	"github.com/google/uuid"
)

type accountService struct {
	accounts  AccountRepository
	donations DonationRepository
	logger    *slog.Logger
}

func NewAccountService(accounts AccountRepository, donations DonationRepository, logger *slog.Logger) AccountService {
	return &accountService{
		accounts:  accounts,
		donations: donations,
		logger:    logger,
	}
}

func (s *accountService) Register(ctx context.Context, req domain.RegisterAccountRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("invalid registration", slog.Any("error", err))
		return uuid.Nil, e.Wrap("registration", e.ErrInvalidInput)
	}

	acc := &domain.Account{
		ID:    uuid.New(),
		Name:  req.Name,
		Role:  req.Role,
		Lat:   req.Lat,
		Lng:   req.Lng,
		Phone: req.Phone,
	}

	if req.Role == domain.RoleNGO {
		if req.Capacity <= 0 {
			return uuid.Nil, e.Wrap("ngo capacity", e.ErrInvalidInput)
		}
		acc.Capacity = req.Capacity
		acc.BaselineCapacity = req.Capacity
	}

	if err := s.accounts.Create(ctx, acc); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("account registered",
		slog.String("id", acc.ID.String()),
		slog.String("name", acc.Name),
		slog.String("role", string(acc.Role)),
	)
	return acc.ID, nil
}

// ResetCapacity overwrites both counters, the documented simplification: a
// reset while donations are still assigned breaks capacity conservation for
// that NGO. That is allowed but logged so it stays observable.
func (s *accountService) ResetCapacity(ctx context.Context, ngoName string, capacity int) error {
	if capacity < 0 {
		return e.Wrap("capacity", e.ErrInvalidInput)
	}

	acc, err := s.accounts.GetByName(ctx, ngoName)
	if err != nil {
		return err
	}
	if acc.Role != domain.RoleNGO {
		return e.Wrap("capacity reset for non-ngo", e.ErrInvalidInput)
	}

	outstanding, err := s.donations.CountAssignedByNGO(ctx, acc.ID)
	if err != nil {
		return err
	}
	if outstanding > 0 {
		s.logger.Warn("capacity reset with outstanding assigned donations",
			slog.String("ngo", acc.Name),
			slog.Int64("outstanding", outstanding),
			slog.Int("new_capacity", capacity),
		)
	}

	if err := s.accounts.ResetCapacity(ctx, acc.ID, capacity); err != nil {
		return err
	}

	s.logger.Info("capacity reset",
		slog.String("ngo", acc.Name),
		slog.Int("capacity", capacity),
	)
	return nil
}
