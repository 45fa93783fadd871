package usecase

import (
	"context"
	"errors"
	"testing"

	"mecstock/internal/domain/entities"
	mock_interfaces "mecstock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAddressUseCase_LookupCEP(t *testing.T) {
	t.Run("invalid formats", func(t *testing.T) {
		uc := NewAddressUseCase(nil)
		for _, cep := range []string{"", "123", "abcdefgh", "0100100O"} {
			if _, err := uc.LookupCEP(context.Background(), cep); !errors.Is(err, ErrInvalidCEP) {
				t.Fatalf("cep %q: expected ErrInvalidCEP, got %v", cep, err)
			}
		}
	})

	t.Run("dash is stripped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICEPGateway(ctrl)
		uc := NewAddressUseCase(gw)

		gw.EXPECT().Lookup(gomock.Any(), "01001000").
			Return(entities.Address{CEP: "01001000", Street: "Praça da Sé", City: "São Paulo"}, nil)

		addr, err := uc.LookupCEP(context.Background(), "01001-000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.Street != "Praça da Sé" {
			t.Fatalf("unexpected address: %+v", addr)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICEPGateway(ctrl)
		uc := NewAddressUseCase(gw)

		gw.EXPECT().Lookup(gomock.Any(), "99999999").Return(entities.Address{}, nil)

		if _, err := uc.LookupCEP(context.Background(), "99999999"); !errors.Is(err, ErrCEPNotFound) {
			t.Fatalf("expected ErrCEPNotFound, got %v", err)
		}
	})
}
