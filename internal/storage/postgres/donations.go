package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Donations struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDonations(pool *pgxpool.Pool, logger *slog.Logger) *Donations {
	return &Donations{pool: pool, logger: logger}
}

// CreateAssigned reserves capacity and records the donation in one
// transaction. The debit carries its own capacity guard, so a concurrent
// request racing for the same NGO cannot overdraw it: whoever loses the
// conditional update gets e.ErrCapacityConflict and nothing is persisted.
func (p *Donations) CreateAssigned(ctx context.Context, d *domain.Donation) error {
	const op = "postgres.Donation.CreateAssigned"

	if d.Quantity <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	d.Status = domain.DonationAssigned

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const debitQuery = `
		UPDATE accounts
		SET capacity = capacity - $1
		WHERE id = $2 AND role = 'ngo' AND capacity >= $1
	`

	cmd, err := tx.Exec(ctx, debitQuery, d.Quantity, d.AssignedNGOID)
	if err != nil {
		p.logger.Error("capacity debit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrCapacityConflict)
	}

	const insertQuery = `
		INSERT INTO donations (id, donor_id, food_name, quantity, expiry_hours,
							   assigned_ngo_id, distance_km, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, insertQuery,
		d.ID,
		d.DonorID,
		d.FoodName,
		d.Quantity,
		d.ExpiryHours,
		d.AssignedNGOID,
		d.DistanceKM,
		d.Status,
		d.CreatedAt,
	)
	if err != nil {
		p.logger.Error("donation insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Donations) Get(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	const op = "postgres.Donation.Get"

	const query = `
		SELECT id, donor_id, food_name, quantity, expiry_hours,
			   assigned_ngo_id, distance_km, status, created_at, collected_at
		FROM donations
		WHERE id = $1
	`

	var d domain.Donation
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.DonorID,
		&d.FoodName,
		&d.Quantity,
		&d.ExpiryHours,
		&d.AssignedNGOID,
		&d.DistanceKM,
		&d.Status,
		&d.CreatedAt,
		&d.CollectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &d, nil
}

// Collect flips the donation to collected and credits back exactly the
// original quantity in one transaction. The row lock taken by the SELECT
// serializes concurrent collects; the status guard on the UPDATE makes a
// second call fail with ErrAlreadyCollected instead of double-crediting.
func (p *Donations) Collect(ctx context.Context, id, ngoID uuid.UUID) (int, error) {
	const op = "postgres.Donation.Collect"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const lockQuery = `
		SELECT quantity, assigned_ngo_id, status
		FROM donations
		WHERE id = $1
		FOR UPDATE
	`

	var (
		quantity int
		assigned uuid.UUID
		status   domain.DonationStatus
	)
	err = tx.QueryRow(ctx, lockQuery, id).Scan(&quantity, &assigned, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return 0, e.WrapError(ctx, op, err)
	}

	if assigned != ngoID {
		return 0, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}
	if status != domain.DonationAssigned {
		return 0, fmt.Errorf("%s: %w", op, e.ErrAlreadyCollected)
	}

	const flipQuery = `
		UPDATE donations
		SET status = 'collected', collected_at = $2
		WHERE id = $1 AND status = 'assigned'
	`

	cmd, err := tx.Exec(ctx, flipQuery, id, time.Now().UTC())
	if err != nil {
		p.logger.Error("status flip failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrAlreadyCollected)
	}

	const creditQuery = `
		UPDATE accounts
		SET capacity = capacity + $1
		WHERE id = $2
	`

	if _, err := tx.Exec(ctx, creditQuery, quantity, ngoID); err != nil {
		p.logger.Error("capacity credit failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return quantity, nil
}

func (p *Donations) CountAssignedByNGO(ctx context.Context, ngoID uuid.UUID) (int64, error) {
	const op = "postgres.Donation.CountAssignedByNGO"

	const query = `
		SELECT COUNT(*)
		FROM donations
		WHERE assigned_ngo_id = $1 AND status = 'assigned'
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, ngoID).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
