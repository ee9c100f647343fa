package service

import (
	"context"
	"math"
	"time"

	"log/slog"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
)

const homeStatsTTL = 30 * time.Second

type statsService struct {
	accounts AccountRepository
	repo     StatsRepository
	cache    StatsCache
	logger   *slog.Logger
}

func NewStatsService(accounts AccountRepository, repo StatsRepository, cache StatsCache, logger *slog.Logger) StatsService {
	return &statsService{
		accounts: accounts,
		repo:     repo,
		cache:    cache,
		logger:   logger,
	}
}

func (s *statsService) Home(ctx context.Context) (*domain.HomeStats, error) {
	if cached, err := s.cache.GetHome(ctx); err != nil {
		s.logger.Warn("stats cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	stats, err := s.repo.HomeStats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetHome(ctx, stats, homeStatsTTL); err != nil {
		s.logger.Warn("stats cache write failed", slog.Any("error", err))
	}

	return stats, nil
}

func (s *statsService) NGODashboard(ctx context.Context, ngoName string) (*domain.NGODashboard, error) {
	acc, err := s.accounts.GetByName(ctx, ngoName)
	if err != nil {
		return nil, err
	}
	if acc.Role != domain.RoleNGO {
		return nil, e.Wrap("dashboard for non-ngo", e.ErrNotFound)
	}

	donations, err := s.repo.NGODonations(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	assigned, collected, err := s.repo.NGOStatusCounts(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	return &domain.NGODashboard{
		NGOName:          acc.Name,
		Capacity:         acc.Capacity,
		BaselineCapacity: acc.BaselineCapacity,
		UtilizationPct:   utilizationPct(acc.Capacity, acc.BaselineCapacity),
		TotalDonations:   assigned + collected,
		TotalAssigned:    assigned,
		TotalCollected:   collected,
		Donations:        donations,
	}, nil
}

func utilizationPct(capacity, baseline int) float64 {
	if baseline <= 0 {
		return 0
	}
	pct := float64(baseline-capacity) / float64(baseline) * 100
	return math.Round(pct*100) / 100
}
