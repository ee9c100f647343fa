package postgres

import (
	"context"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	// ListEligibleNGOs returns NGOs whose current capacity covers quantity.
	ListEligibleNGOs(ctx context.Context, quantity int) ([]*domain.Account, error)
	// ResetCapacity overwrites both capacity and baseline_capacity.
	ResetCapacity(ctx context.Context, ngoID uuid.UUID, capacity int) error
}

type DonationRepository interface {
	// CreateAssigned atomically debits the assigned NGO's capacity and
	// inserts the donation. Returns e.ErrCapacityConflict when the NGO no
	// longer covers the quantity, leaving no state behind.
	CreateAssigned(ctx context.Context, d *domain.Donation) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	// Collect atomically flips the donation to collected and credits back
	// the original quantity. Returns e.ErrNotFound, e.ErrUnauthorized or
	// e.ErrAlreadyCollected; a duplicate call can never re-credit.
	Collect(ctx context.Context, id, ngoID uuid.UUID) (int, error)
	CountAssignedByNGO(ctx context.Context, ngoID uuid.UUID) (int64, error)
}

type StatsRepository interface {
	HomeStats(ctx context.Context) (*domain.HomeStats, error)
	NGODonations(ctx context.Context, ngoID uuid.UUID) ([]domain.DonationSummary, error)
	NGOStatusCounts(ctx context.Context, ngoID uuid.UUID) (assigned, collected int64, err error)
}

func (p *Postgres) Accounts() AccountRepository   { return p.Account }
func (p *Postgres) Donations() DonationRepository { return p.Donation }
func (p *Postgres) Stats() StatsRepository        { return p.Stat }
