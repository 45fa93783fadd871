package request

import "mecstock/internal/domain/entities"

type AddressRequest struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Complement string `json:"complement"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		CEP:        r.CEP,
		Street:     r.Street,
		District:   r.District,
		Number:     r.Number,
		City:       r.City,
		State:      r.State,
		Complement: r.Complement,
	}
}
