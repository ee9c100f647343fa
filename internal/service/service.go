package service

import (
	"context"
	"time"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Use cases.
type DonationService interface {
	Create(ctx context.Context, req domain.CreateDonationRequest) (*domain.MatchResult, error)
	Collect(ctx context.Context, donationID uuid.UUID, ngoName string) error
}

type AccountService interface {
	Register(ctx context.Context, req domain.RegisterAccountRequest) (uuid.UUID, error)
	ResetCapacity(ctx context.Context, ngoName string, capacity int) error
}

type StatsService interface {
	Home(ctx context.Context) (*domain.HomeStats, error)
	NGODashboard(ctx context.Context, ngoName string) (*domain.NGODashboard, error)
}

// Storage dependencies, as seen from the use cases.
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	ListEligibleNGOs(ctx context.Context, quantity int) ([]*domain.Account, error)
	ResetCapacity(ctx context.Context, ngoID uuid.UUID, capacity int) error
}

type DonationRepository interface {
	CreateAssigned(ctx context.Context, d *domain.Donation) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	Collect(ctx context.Context, id, ngoID uuid.UUID) (int, error)
	CountAssignedByNGO(ctx context.Context, ngoID uuid.UUID) (int64, error)
}

type StatsRepository interface {
	HomeStats(ctx context.Context) (*domain.HomeStats, error)
	NGODonations(ctx context.Context, ngoID uuid.UUID) ([]domain.DonationSummary, error)
	NGOStatusCounts(ctx context.Context, ngoID uuid.UUID) (assigned, collected int64, err error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type StatsCache interface {
	GetHome(ctx context.Context) (*domain.HomeStats, error)
	SetHome(ctx context.Context, stats *domain.HomeStats, ttl time.Duration) error
}

type Service struct {
	Donations DonationService
	Accounts  AccountService
	Stats     StatsService
}

func NewService(
	donations DonationService,
	accounts AccountService,
	stats StatsService,
) *Service {
	return &Service{
		Donations: donations,
		Accounts:  accounts,
		Stats:     stats,
	}
}
