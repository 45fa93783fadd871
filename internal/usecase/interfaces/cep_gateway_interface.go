package interfaces

import (
	"context"
	"mecstock/internal/domain/entities"
)

// ICEPGateway resolves a Brazilian postal code (CEP) to an address.
type ICEPGateway interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}
