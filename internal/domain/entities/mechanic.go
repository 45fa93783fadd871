package entities

import "time"

// Mechanic (mecânico).
//
// Storage model (DynamoDB):
//   - PK: id

type Mechanic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
