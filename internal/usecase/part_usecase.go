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
	ErrPartNotFound      = errors.New("stock item not found")
	ErrInvalidPart       = errors.New("invalid stock item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStockDelta = errors.New("invalid stock delta")
)

// IPartUseCase exposes the stock module. AdjustQuantity takes a signed delta:
// negative consumes, positive restocks. Consuming below zero is rejected.

type IPartUseCase interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}

type PartUseCase struct {
	repo interfaces.IPartRepository
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

func (u *PartUseCase) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price < 0 || p.Quantity < 0 {
		return entities.Part{}, ErrInvalidPart
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PartUseCase) GetByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPart
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) List(ctx context.Context) ([]entities.Part, error) {
	return u.repo.List(ctx)
}

func (u *PartUseCase) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" || p.Name == "" || p.Price < 0 || p.Quantity < 0 {
		return entities.Part{}, ErrInvalidPart
	}

	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Part{}, err
	}

	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *PartUseCase) AdjustQuantity(ctx context.Context, id string, delta int) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPart
	}
	if delta == 0 {
		return entities.Part{}, ErrInvalidStockDelta
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if current.Quantity+delta < 0 {
		log.Printf("[stock][usecase] adjust rejected part_id=%s quantity=%d delta=%d", id, current.Quantity, delta)
		return entities.Part{}, ErrInsufficientStock
	}

	// The repository re-checks the floor condition atomically.
	updated, err := u.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return entities.Part{}, err
	}
	if updated.ID == "" {
		return entities.Part{}, ErrInsufficientStock
	}
	log.Printf("[stock][usecase] adjusted part_id=%s delta=%d quantity=%d", id, delta, updated.Quantity)
	return updated, nil
}

func (u *PartUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}
