package entities

import "time"

// Vehicle is a customer's car (carro).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id

type Vehicle struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Model      string    `json:"model"`
	Maker      string    `json:"maker"`
	Plate      string    `json:"plate"`
	Fuel       string    `json:"fuel"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
