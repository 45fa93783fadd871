package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidVehicle  = errors.New("invalid vehicle")
)

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo         interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customerRepo interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.CustomerID = strings.TrimSpace(v.CustomerID)
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.CustomerID == "" || v.Plate == "" || strings.TrimSpace(v.Model) == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}

	owner, err := u.customerRepo.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidVehicle
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = strings.TrimSpace(v.ID)
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.ID == "" || v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}

	current, err := u.GetByID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v.CustomerID = current.CustomerID
	v.CreatedAt = current.CreatedAt
	v.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, v)
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
