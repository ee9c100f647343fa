package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service"
	mock_service "github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service/mocks"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
)

func TestAccountRegister_NGOSetsBaseline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	accounts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.Account) error {
			if acc.Capacity != 50 || acc.BaselineCapacity != 50 {
				t.Fatalf("ngo capacity not initialized: %+v", acc)
			}
			if acc.ID == uuid.Nil {
				t.Fatalf("id not generated")
			}
			return nil
		})

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	id, err := svc.Register(context.Background(), domain.RegisterAccountRequest{
		Name:     "Helping Hands",
		Role:     domain.RoleNGO,
		Lat:      12.90,
		Lng:      77.60,
		Capacity: 50,
		Phone:    "+100000000",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
}

func TestAccountRegister_NGOWithoutCapacityRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	_, err := svc.Register(context.Background(), domain.RegisterAccountRequest{
		Name: "Helping Hands",
		Role: domain.RoleNGO,
		Lat:  12.90,
		Lng:  77.60,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAccountRegister_RestaurantIgnoresCapacity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	accounts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.Account) error {
			if acc.Capacity != 0 || acc.BaselineCapacity != 0 {
				t.Fatalf("restaurant should carry no capacity: %+v", acc)
			}
			return nil
		})

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	_, err := svc.Register(context.Background(), domain.RegisterAccountRequest{
		Name:     "Cafe X",
		Role:     domain.RoleRestaurant,
		Lat:      12.90,
		Lng:      77.60,
		Capacity: 25,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAccountRegister_InvalidRole(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	_, err := svc.Register(context.Background(), domain.RegisterAccountRequest{
		Name: "Mystery",
		Role: domain.Role("admin"),
		Lat:  12.90,
		Lng:  77.60,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResetCapacity_OverwritesBothCounters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	ngo := testNGO("Helping Hands", 12.91, 77.61, 40)

	accounts.EXPECT().GetByName(gomock.Any(), "Helping Hands").Return(ngo, nil)
	donations.EXPECT().CountAssignedByNGO(gomock.Any(), ngo.ID).Return(int64(2), nil)
	accounts.EXPECT().ResetCapacity(gomock.Any(), ngo.ID, 100).Return(nil)

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	if err := svc.ResetCapacity(context.Background(), "Helping Hands", 100); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestResetCapacity_NonNGORejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	accounts.EXPECT().GetByName(gomock.Any(), "Cafe X").Return(testDonor(), nil)

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	err := svc.ResetCapacity(context.Background(), "Cafe X", 100)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResetCapacity_NegativeRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mock_service.NewMockAccountRepository(ctrl)
	donations := mock_service.NewMockDonationRepository(ctrl)

	svc := service.NewAccountService(accounts, donations, newTestLogger())

	err := svc.ResetCapacity(context.Background(), "Helping Hands", -1)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
