package entities

import "time"

// Part is a stock item (insumo): consumables and spare parts kept by the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity is adjusted with deltas (consume/restock) and may never go
// negative; the usecase enforces that.

type Part struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
