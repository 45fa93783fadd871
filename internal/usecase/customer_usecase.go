package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	cep  interfaces.ICEPGateway
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

// NewCustomerUseCase wires the registry. cep may be nil; then no address
// auto-fill happens.
func NewCustomerUseCase(repo interfaces.ICustomerRepository, cep interfaces.ICEPGateway) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, cep: cep}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.CPF = strings.TrimSpace(c.CPF)
	if c.Name == "" || c.CPF == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	u.fillAddressFromCEP(ctx, &c)

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" || c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}

	u.fillAddressFromCEP(ctx, &c)
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

// fillAddressFromCEP completes a CEP-only address the way the old UI did
// against ViaCEP. Lookup failures leave the address as sent.
func (u *CustomerUseCase) fillAddressFromCEP(ctx context.Context, c *entities.Customer) {
	if u.cep == nil || c.Address.CEP == "" || c.Address.Street != "" {
		return
	}
	found, err := u.cep.Lookup(ctx, c.Address.CEP)
	if err != nil {
		log.Printf("[customer][usecase] cep lookup failed cep=%s err=%v", c.Address.CEP, err)
		return
	}
	found.Number = c.Address.Number
	found.Complement = c.Address.Complement
	c.Address = found
}
