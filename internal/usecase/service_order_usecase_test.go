package usecase

import (
	"context"
	"errors"
	"testing"

	"mecstock/internal/domain/entities"
	mock_interfaces "mecstock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		MechanicID: "mec-1",
		Budget:     350,
	}
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("missing references", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil)
		o := validOrder()
		o.VehicleID = "  "
		if _, err := uc.Create(context.Background(), o); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("non positive budget", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil)
		o := validOrder()
		o.Budget = 0
		if _, err := uc.Create(context.Background(), o); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("home service without address", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil)
		o := validOrder()
		o.HomeService = true
		if _, err := uc.Create(context.Background(), o); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("success starts at Cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID == "" {
					t.Fatal("id must be assigned")
				}
				if o.Status != entities.OrderStatusCadastrado {
					t.Fatalf("expected Cadastrado, got %s", o.Status)
				}
				if o.PaymentID != "" {
					t.Fatal("new order must not carry a payment link")
				}
				return o, nil
			})

		if _, err := uc.Create(context.Background(), validOrder()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("address dropped when not home service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, nil)

		o := validOrder()
		o.ServiceAddress = &entities.Address{CEP: "01310100", Street: "Av Paulista", City: "São Paulo"}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, created entities.ServiceOrder) (entities.ServiceOrder, error) {
				if created.ServiceAddress != nil {
					t.Fatal("service address must be dropped for shop service")
				}
				return created, nil
			})

		if _, err := uc.Create(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_UpdateStatus(t *testing.T) {
	type transition struct {
		from    entities.OrderStatus
		to      entities.OrderStatus
		allowed bool
	}
	cases := []transition{
		{entities.OrderStatusCadastrado, entities.OrderStatusAguardandoAprovacao, true},
		{entities.OrderStatusAguardandoAprovacao, entities.OrderStatusAprovado, true},
		{entities.OrderStatusAprovado, entities.OrderStatusEmAndamento, true},
		{entities.OrderStatusEmAndamento, entities.OrderStatusDiagnosticoAdic, true},
		{entities.OrderStatusEmAndamento, entities.OrderStatusFinalizado, true},
		{entities.OrderStatusDiagnosticoAdic, entities.OrderStatusAguardandoPecas, true},
		{entities.OrderStatusAguardandoPecas, entities.OrderStatusFinalizado, true},
		{entities.OrderStatusFinalizado, entities.OrderStatusEntregue, true},
		{entities.OrderStatusCadastrado, entities.OrderStatusCancelado, true},
		{entities.OrderStatusFinalizado, entities.OrderStatusCancelado, true},
		{entities.OrderStatusCadastrado, entities.OrderStatusAprovado, false},
		{entities.OrderStatusAprovado, entities.OrderStatusCadastrado, false},
		{entities.OrderStatusEntregue, entities.OrderStatusCancelado, false},
		{entities.OrderStatusCancelado, entities.OrderStatusCadastrado, false},
	}

	for _, tc := range cases {
		name := string(tc.from) + "->" + string(tc.to)
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewServiceOrderUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: tc.from}, nil)
			if tc.allowed {
				repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", tc.to).Return(entities.ServiceOrder{ID: "os-1", Status: tc.to}, nil)
			}

			got, err := uc.UpdateStatus(context.Background(), "os-1", tc.to)
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected transition to succeed, got %v", err)
				}
				if got.Status != tc.to {
					t.Fatalf("expected %s, got %s", tc.to, got.Status)
				}
				return
			}
			if !errors.Is(err, ErrInvalidStatusTransition) {
				t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatus("Sumido"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("publishes status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusCadastrado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusAguardandoAprovacao).
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusAguardandoAprovacao}, nil)
		publisher.EXPECT().Publish(gomock.Any(), "service_order.status_changed", gomock.Any()).Return(nil)

		if _, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusAguardandoAprovacao); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewServiceOrderUseCase(repo, nil, nil)

	current := entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusAprovado, PaymentID: "pay-1", Budget: 100}
	repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			if o.Status != entities.OrderStatusAprovado {
				t.Fatalf("update must not change status, got %s", o.Status)
			}
			if o.PaymentID != "pay-1" {
				t.Fatalf("update must not change payment link, got %q", o.PaymentID)
			}
			return o, nil
		})

	in := validOrder()
	in.ID = "os-1"
	in.Status = entities.OrderStatusCancelado // must be ignored
	if _, err := uc.Update(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("cascades linked payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", PaymentID: "pay-1"}, nil)
		paymentRepo.EXPECT().Delete(gomock.Any(), "pay-1").Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

		if err := uc.Delete(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no payment linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

		if err := uc.Delete(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		if err := uc.Delete(context.Background(), "os-x"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
