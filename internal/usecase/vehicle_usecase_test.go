package usecase

import (
	"context"
	"errors"
	"testing"

	"mecstock/internal/domain/entities"
	mock_interfaces "mecstock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("missing plate", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Vehicle{CustomerID: "cust-1", Model: "Gol"})
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(nil, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-x").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), entities.Vehicle{CustomerID: "cust-x", Model: "Gol", Plate: "abc1d23"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success normalizes plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customerRepo)

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Plate != "ABC1D23" {
					t.Fatalf("plate must be upper-cased, got %q", v.Plate)
				}
				return v, nil
			})

		if _, err := uc.Create(context.Background(), entities.Vehicle{CustomerID: "cust-1", Model: "Gol", Plate: "abc1d23"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewVehicleUseCase(repo, nil)

	current := entities.Vehicle{ID: "veh-1", CustomerID: "cust-1", Plate: "ABC1D23"}
	repo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			if v.CustomerID != "cust-1" {
				t.Fatalf("owner must not change on update, got %q", v.CustomerID)
			}
			return v, nil
		})

	in := entities.Vehicle{ID: "veh-1", CustomerID: "cust-other", Plate: "ABC1D23", Model: "Gol"}
	if _, err := uc.Update(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
