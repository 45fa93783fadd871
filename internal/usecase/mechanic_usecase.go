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
	ErrMechanicNotFound = errors.New("mechanic not found")
	ErrInvalidMechanic  = errors.New("invalid mechanic")
)

type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context) ([]entities.Mechanic, error)
	Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}

type MechanicUseCase struct {
	repo interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanic
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanic
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context) ([]entities.Mechanic, error) {
	return u.repo.List(ctx)
}

func (u *MechanicUseCase) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" || m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanic
	}

	current, err := u.GetByID(ctx, m.ID)
	if err != nil {
		return entities.Mechanic{}, err
	}

	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, m)
}

func (u *MechanicUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
