package request

import "mecstock/internal/domain/entities"

type MechanicRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r MechanicRequest) ToEntity(id string) entities.Mechanic {
	return entities.Mechanic{
		ID:    id,
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}
