package request

import "mecstock/internal/domain/entities"

type PartRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

// QuantityAdjustRequest carries the signed stock delta: negative consumes,
// positive restocks.
type QuantityAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}
