package entities

import "time"

// Customer is a shop client (cliente).
//
// Storage model (DynamoDB):
//   - PK: id
//
// The address is embedded rather than referenced; DynamoDB has no joins and
// the shop never shares one address row between customers.

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
