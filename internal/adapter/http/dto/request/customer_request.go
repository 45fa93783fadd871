package request

import "mecstock/internal/domain/entities"

// CustomerRequest covers create and update; the id comes from the path on
// update. A CEP-only address is auto-completed server-side.

type CustomerRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email"`
	CPF     string         `json:"cpf" binding:"required"`
	Phone   string         `json:"phone"`
	Address AddressRequest `json:"address"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:      id,
		Name:    r.Name,
		Email:   r.Email,
		CPF:     r.CPF,
		Phone:   r.Phone,
		Address: r.Address.ToEntity(),
	}
}
