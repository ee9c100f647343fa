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

type Accounts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAccounts(pool *pgxpool.Pool, logger *slog.Logger) *Accounts {
	return &Accounts{pool: pool, logger: logger}
}

func (p *Accounts) Create(ctx context.Context, acc *domain.Account) error {
	const op = "postgres.Account.Create"

	const query = `
		INSERT INTO accounts (id, name, role, geo_point, capacity, baseline_capacity, phone, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9)
	`

	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		acc.ID,
		acc.Name,
		acc.Role,
		acc.Lng,
		acc.Lat,
		acc.Capacity,
		acc.BaselineCapacity,
		acc.Phone,
		acc.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.String("name", acc.Name),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Accounts) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	const op = "postgres.Account.GetByName"

	const query = `
		SELECT id,
			   name,
			   role,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   capacity,
			   baseline_capacity,
			   COALESCE(phone, ''),
			   created_at
		FROM accounts
		WHERE name = $1
	`

	var acc domain.Account
	err := p.pool.QueryRow(ctx, query, name).Scan(
		&acc.ID,
		&acc.Name,
		&acc.Role,
		&acc.Lat,
		&acc.Lng,
		&acc.Capacity,
		&acc.BaselineCapacity,
		&acc.Phone,
		&acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("name", name))
		return nil, e.WrapError(ctx, op, err)
	}

	return &acc, nil
}

func (p *Accounts) ListEligibleNGOs(ctx context.Context, quantity int) ([]*domain.Account, error) {
	const op = "postgres.Account.ListEligibleNGOs"

	if quantity <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT id,
			   name,
			   role,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   capacity,
			   baseline_capacity,
			   COALESCE(phone, ''),
			   created_at
		FROM accounts
		WHERE role = 'ngo' AND capacity >= $1
	`

	rows, err := p.pool.Query(ctx, query, quantity)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var ngos []*domain.Account
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.ID,
			&acc.Name,
			&acc.Role,
			&acc.Lat,
			&acc.Lng,
			&acc.Capacity,
			&acc.BaselineCapacity,
			&acc.Phone,
			&acc.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ngos = append(ngos, &acc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ngos, nil
}

func (p *Accounts) ResetCapacity(ctx context.Context, ngoID uuid.UUID, capacity int) error {
	const op = "postgres.Account.ResetCapacity"

	if capacity < 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// Overwrites both counters unconditionally, discarding committed state.
	const query = `
		UPDATE accounts
		SET capacity = $2, baseline_capacity = $2
		WHERE id = $1 AND role = 'ngo'
	`

	cmd, err := p.pool.Exec(ctx, query, ngoID, capacity)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", ngoID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
