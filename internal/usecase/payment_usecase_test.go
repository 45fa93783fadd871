package usecase

import (
	"context"
	"errors"
	"testing"

	"mecstock/internal/domain/entities"
	"mecstock/internal/domain/payments"
	"mecstock/internal/usecase/interfaces"
	mock_interfaces "mecstock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func cashParams() payments.Params { return payments.Params{} }

func cardParams() payments.Params {
	return payments.Params{
		payments.ParamCardNumber: "5031433215406351",
		payments.ParamExpiry:     "11/30",
		payments.ParamCVV:        "123",
	}
}

func TestPaymentUseCase_Process_Validation(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, _, err := uc.Process(context.Background(), "   ", payments.MethodCash, 100, cashParams())
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, _, err := uc.Process(context.Background(), "os-1", payments.Method("boleto"), 100, cashParams())
		if !errors.Is(err, payments.ErrUnsupportedMethod) {
			t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		for _, amount := range []float64{0, -10} {
			_, _, err := uc.Process(context.Background(), "os-1", payments.MethodCash, amount, cashParams())
			if !errors.Is(err, payments.ErrInvalidAmount) {
				t.Fatalf("amount %.2f: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-missing").Return(entities.ServiceOrder{}, nil)

		_, _, err := uc.Process(context.Background(), "os-missing", payments.MethodCash, 100, cashParams())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("missing card params rejects before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Budget: 150}, nil)
		// no repo expectations: the dispatch failure must not touch the store

		_, _, err := uc.Process(context.Background(), "os-1", payments.MethodCreditCard, 100, payments.Params{})
		if !errors.Is(err, payments.ErrInvalidParams) {
			t.Fatalf("expected ErrInvalidParams, got %v", err)
		}
	})
}

func TestPaymentUseCase_Process_FirstSettlement(t *testing.T) {
	methods := []struct {
		method payments.Method
		params payments.Params
	}{
		{payments.MethodCash, payments.Params{}},
		{payments.MethodCreditCard, cardParams()},
		{payments.MethodDebitCard, cardParams()},
		{payments.MethodBankTransfer, payments.Params{payments.ParamAccountNumber: "12345-6", payments.ParamBankCode: "341"}},
		{payments.MethodPix, payments.Params{payments.ParamPayerKey: "payer@test.com"}},
	}

	for _, tc := range methods {
		t.Run(string(tc.method), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewPaymentUseCase(repo, orderRepo, nil, nil)

			order := entities.ServiceOrder{ID: "os-1", Budget: 350.50, Status: entities.OrderStatusFinalizado}
			orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
			repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.Payment) (entities.Payment, error) {
					if p.ID == "" {
						t.Fatal("payment id must be assigned before the write")
					}
					if p.OrderID != "os-1" {
						t.Fatalf("unexpected order id %q", p.OrderID)
					}
					if p.TotalAmount != 350.50 {
						t.Fatalf("total amount must come from the order budget, got %.2f", p.TotalAmount)
					}
					if p.FinalAmount != 300 {
						t.Fatalf("final amount must come from the request, got %.2f", p.FinalAmount)
					}
					if p.Status != entities.PaymentStatusPago {
						t.Fatalf("expected Pago, got %s", p.Status)
					}
					return p, nil
				})

			outcome, payment, err := uc.Process(context.Background(), "os-1", tc.method, 300, tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Status != "success" {
				t.Fatalf("expected success, got %q", outcome.Status)
			}
			if outcome.TransactionReference == "" {
				t.Fatal("expected a transaction reference")
			}
			if payment.Method != string(tc.method) {
				t.Fatalf("expected method %s, got %s", tc.method, payment.Method)
			}
		})
	}
}

func TestPaymentUseCase_Process_RepeatSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, nil, nil)

	order := entities.ServiceOrder{ID: "os-1", Budget: 500, PaymentID: "pay-1"}
	existing := entities.Payment{ID: "pay-1", OrderID: "os-1", TotalAmount: 500, FinalAmount: 200, Method: "pix", Status: entities.PaymentStatusPago}

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
	repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.ID != "pay-1" {
				t.Fatalf("repeat settlement must mutate the linked payment, got id %q", p.ID)
			}
			if p.FinalAmount != 500 {
				t.Fatalf("expected final amount 500, got %.2f", p.FinalAmount)
			}
			if p.Method != "cash" {
				t.Fatalf("expected method overwrite to cash, got %s", p.Method)
			}
			if p.TotalAmount != 500 {
				t.Fatalf("total amount must be preserved, got %.2f", p.TotalAmount)
			}
			return p, nil
		})

	_, payment, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 500, payments.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != "pay-1" {
		t.Fatalf("expected pay-1, got %s", payment.ID)
	}
}

func TestPaymentUseCase_Process_LinkRaceFallsBackToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, nil, nil)

	stale := entities.ServiceOrder{ID: "os-1", Budget: 500}
	fresh := entities.ServiceOrder{ID: "os-1", Budget: 500, PaymentID: "pay-winner"}
	winner := entities.Payment{ID: "pay-winner", OrderID: "os-1", TotalAmount: 500}

	gomock.InOrder(
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(stale, nil),
		repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrPaymentAlreadyLinked),
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(fresh, nil),
		repo.EXPECT().GetByID(gomock.Any(), "pay-winner").Return(winner, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil }),
	)

	_, payment, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 500, payments.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != "pay-winner" {
		t.Fatalf("loser must converge on the winner's payment, got %s", payment.ID)
	}
}

func TestPaymentUseCase_Process_GatewayReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, gateway, nil)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Budget: 100}, nil)
	gateway.EXPECT().Authorize(gomock.Any(), payments.MethodPix, 100.0, gomock.Any()).Return("MP-42", nil)
	repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

	outcome, _, err := uc.Process(context.Background(), "os-1", payments.MethodPix, 100, payments.Params{payments.ParamPayerKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.TransactionReference != "MP-42" {
		t.Fatalf("expected the acquirer reference, got %q", outcome.TransactionReference)
	}
}

func TestPaymentUseCase_Process_UnmappedMethodKeepsLocalReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, gateway, nil)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Budget: 100}, nil)
	gateway.EXPECT().Authorize(gomock.Any(), payments.MethodCash, 100.0, gomock.Any()).Return("", interfaces.ErrNoAcquirerMapping)
	repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

	outcome, payment, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 100, payments.Params{})
	if err != nil {
		t.Fatalf("cash must settle with a gateway configured, got %v", err)
	}
	if outcome.TransactionReference == "" {
		t.Fatal("expected the simulated reference to survive")
	}
	if payment.Status != entities.PaymentStatusPago {
		t.Fatalf("expected Pago, got %s", payment.Status)
	}
}

func TestPaymentUseCase_Process_PaymentVanishesDuringUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, nil, nil)

	order := entities.ServiceOrder{ID: "os-1", Budget: 500, PaymentID: "pay-1"}
	existing := entities.Payment{ID: "pay-1", OrderID: "os-1", TotalAmount: 500}

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
	repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(existing, nil)
	// Row deleted concurrently; the conditional update reports no row.
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Payment{}, nil)

	_, _, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 500, payments.Params{})
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("a vanished payment row must not settle as success, got %v", err)
	}
}

func TestPaymentUseCase_Process_PublishesSettledEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, nil, publisher)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Budget: 100}, nil)
	repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
	publisher.EXPECT().Publish(gomock.Any(), "payment.settled", gomock.Any()).Return(nil)

	if _, _, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 100, payments.Params{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_Process_PublishFailureDoesNotFailSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, nil, publisher)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Budget: 100}, nil)
	repo.EXPECT().CreateAndLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
	publisher.EXPECT().Publish(gomock.Any(), "payment.settled", gomock.Any()).Return(errors.New("broker down"))

	if _, _, err := uc.Process(context.Background(), "os-1", payments.MethodCash, 100, payments.Params{}); err != nil {
		t.Fatalf("settlement must not fail on a publish error, got %v", err)
	}
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-x")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)

		p, err := uc.GetByID(context.Background(), "pay-1")
		if err != nil || p.ID != "pay-1" {
			t.Fatalf("expected pay-1, got %v %v", p, err)
		}
	})
}

func TestPaymentUseCase_GetByOrderID(t *testing.T) {
	t.Run("blank order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.GetByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("no payment yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByOrderID(gomock.Any(), "os-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByOrderID(context.Background(), "os-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
