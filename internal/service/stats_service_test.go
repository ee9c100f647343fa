package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service"
	mock_service "github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service/mocks"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
)

func TestStatsHome_CacheHitSkipsRepo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)

	want := &domain.HomeStats{MealsCollected: 120, NGOCount: 3, RestaurantCount: 5, DonorCount: 7}
	cache.EXPECT().GetHome(gomock.Any()).Return(want, nil)

	svc := service.NewStatsService(accounts, repo, cache, newTestLogger())

	got, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestStatsHome_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)

	want := &domain.HomeStats{MealsCollected: 40, NGOCount: 1, RestaurantCount: 2, DonorCount: 3}

	cache.EXPECT().GetHome(gomock.Any()).Return(nil, nil)
	repo.EXPECT().HomeStats(gomock.Any()).Return(want, nil)
	cache.EXPECT().SetHome(gomock.Any(), want, gomock.Any()).Return(nil)

	svc := service.NewStatsService(accounts, repo, cache, newTestLogger())

	got, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestStatsHome_CacheErrorsAreSoft(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)

	want := &domain.HomeStats{MealsCollected: 10}

	cache.EXPECT().GetHome(gomock.Any()).Return(nil, errors.New("redis down"))
	repo.EXPECT().HomeStats(gomock.Any()).Return(want, nil)
	cache.EXPECT().SetHome(gomock.Any(), want, gomock.Any()).Return(errors.New("redis down"))

	svc := service.NewStatsService(accounts, repo, cache, newTestLogger())

	got, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("cache failures must not surface: %v", err)
	}
	if got.MealsCollected != 10 {
		t.Fatalf("got %+v", got)
	}
}

func TestNGODashboard_AssemblesProjection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)

	ngo := testNGO("Helping Hands", 12.91, 77.61, 40)
	ngo.BaselineCapacity = 50

	summaries := []domain.DonationSummary{
		{DonorName: "Cafe X", FoodName: "Rice", Quantity: 10, Status: domain.DonationAssigned},
	}

	accounts.EXPECT().GetByName(gomock.Any(), "Helping Hands").Return(ngo, nil)
	repo.EXPECT().NGODonations(gomock.Any(), ngo.ID).Return(summaries, nil)
	repo.EXPECT().NGOStatusCounts(gomock.Any(), ngo.ID).Return(int64(1), int64(4), nil)

	svc := service.NewStatsService(accounts, repo, cache, newTestLogger())

	dash, err := svc.NGODashboard(context.Background(), "Helping Hands")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dash.UtilizationPct != 20 {
		t.Fatalf("expected 20%% utilization, got %v", dash.UtilizationPct)
	}
	if dash.TotalDonations != 5 || dash.TotalAssigned != 1 || dash.TotalCollected != 4 {
		t.Fatalf("unexpected counts: %+v", dash)
	}
	if len(dash.Donations) != 1 || dash.Donations[0].DonorName != "Cafe X" {
		t.Fatalf("unexpected donations: %+v", dash.Donations)
	}
}

func TestNGODashboard_NonNGONotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)

	accounts.EXPECT().GetByName(gomock.Any(), "Cafe X").Return(testDonor(), nil)

	svc := service.NewStatsService(accounts, repo, cache, newTestLogger())

	_, err := svc.NGODashboard(context.Background(), "Cafe X")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
