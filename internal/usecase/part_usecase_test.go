package usecase

import (
	"context"
	"errors"
	"testing"

	"mecstock/internal/domain/entities"
	mock_interfaces "mecstock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewPartUseCase(nil)
		if _, err := uc.Create(context.Background(), entities.Part{Name: "  "}); !errors.Is(err, ErrInvalidPart) {
			t.Fatalf("expected ErrInvalidPart, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.ID == "" {
					t.Fatal("id must be assigned")
				}
				return p, nil
			})

		if _, err := uc.Create(context.Background(), entities.Part{Name: "Filtro de óleo", Price: 35.90, Quantity: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPartUseCase_AdjustQuantity(t *testing.T) {
	t.Run("zero delta", func(t *testing.T) {
		uc := NewPartUseCase(nil)
		if _, err := uc.AdjustQuantity(context.Background(), "part-1", 0); !errors.Is(err, ErrInvalidStockDelta) {
			t.Fatalf("expected ErrInvalidStockDelta, got %v", err)
		}
	})

	t.Run("would go negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Quantity: 3}, nil)

		if _, err := uc.AdjustQuantity(context.Background(), "part-1", -5); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("consume", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Quantity: 10}, nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), "part-1", -4).Return(entities.Part{ID: "part-1", Quantity: 6}, nil)

		updated, err := uc.AdjustQuantity(context.Background(), "part-1", -4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 6 {
			t.Fatalf("expected 6, got %d", updated.Quantity)
		}
	})

	t.Run("concurrent consume loses atomic recheck", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		// The read sees enough stock, but the conditional write fails because
		// another consume landed in between.
		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Quantity: 4}, nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), "part-1", -4).Return(entities.Part{}, nil)

		if _, err := uc.AdjustQuantity(context.Background(), "part-1", -4); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("restock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Quantity: 0}, nil)
		repo.EXPECT().AdjustQuantity(gomock.Any(), "part-1", 20).Return(entities.Part{ID: "part-1", Quantity: 20}, nil)

		updated, err := uc.AdjustQuantity(context.Background(), "part-1", 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 20 {
			t.Fatalf("expected 20, got %d", updated.Quantity)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "part-x").Return(entities.Part{}, nil)

		if _, err := uc.AdjustQuantity(context.Background(), "part-x", 1); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})
}
