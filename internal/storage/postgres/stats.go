package postgres

import (
	"context"
	"log/slog"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) HomeStats(ctx context.Context) (*domain.HomeStats, error) {
	const op = "postgres.Stats.HomeStats"

	const query = `
		SELECT
			(SELECT COALESCE(SUM(quantity), 0) FROM donations WHERE status = 'collected'),
			(SELECT COUNT(*) FROM accounts WHERE role = 'ngo'),
			(SELECT COUNT(*) FROM accounts WHERE role = 'restaurant'),
			(SELECT COUNT(*) FROM accounts WHERE role = 'donor')
	`

	var stats domain.HomeStats
	err := p.pool.QueryRow(ctx, query).Scan(
		&stats.MealsCollected,
		&stats.NGOCount,
		&stats.RestaurantCount,
		&stats.DonorCount,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &stats, nil
}

func (p *StatsRepo) NGODonations(ctx context.Context, ngoID uuid.UUID) ([]domain.DonationSummary, error) {
	const op = "postgres.Stats.NGODonations"

	const query = `
		SELECT d.id, a.name, d.food_name, d.quantity, d.expiry_hours, d.distance_km, d.status
		FROM donations d
		JOIN accounts a ON d.donor_id = a.id
		WHERE d.assigned_ngo_id = $1
		ORDER BY d.created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, ngoID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var summaries []domain.DonationSummary
	for rows.Next() {
		var s domain.DonationSummary
		if err := rows.Scan(
			&s.ID,
			&s.DonorName,
			&s.FoodName,
			&s.Quantity,
			&s.ExpiryHours,
			&s.DistanceKM,
			&s.Status,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return summaries, nil
}

func (p *StatsRepo) NGOStatusCounts(ctx context.Context, ngoID uuid.UUID) (int64, int64, error) {
	const op = "postgres.Stats.NGOStatusCounts"

	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'assigned'),
			COUNT(*) FILTER (WHERE status = 'collected')
		FROM donations
		WHERE assigned_ngo_id = $1
	`

	var assigned, collected int64
	if err := p.pool.QueryRow(ctx, query, ngoID).Scan(&assigned, &collected); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, e.WrapError(ctx, op, err)
	}

	return assigned, collected, nil
}
