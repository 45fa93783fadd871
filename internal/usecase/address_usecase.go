package usecase

import (
	"context"
	"errors"
	"strings"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"
)

var (
	ErrInvalidCEP  = errors.New("invalid cep")
	ErrCEPNotFound = errors.New("cep not found")
)

type IAddressUseCase interface {
	LookupCEP(ctx context.Context, cep string) (entities.Address, error)
}

type AddressUseCase struct {
	cep interfaces.ICEPGateway
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(cep interfaces.ICEPGateway) *AddressUseCase {
	return &AddressUseCase{cep: cep}
}

// LookupCEP accepts "01001000" or "01001-000".
func (u *AddressUseCase) LookupCEP(ctx context.Context, cep string) (entities.Address, error) {
	cep = strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if len(cep) != 8 {
		return entities.Address{}, ErrInvalidCEP
	}
	for _, r := range cep {
		if r < '0' || r > '9' {
			return entities.Address{}, ErrInvalidCEP
		}
	}

	addr, err := u.cep.Lookup(ctx, cep)
	if err != nil {
		return entities.Address{}, err
	}
	if addr.IsZero() {
		return entities.Address{}, ErrCEPNotFound
	}
	return addr, nil
}
