package response

import "mecstock/internal/domain/entities"

type AddressResponse struct {
	CEP      string `json:"cep"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		CEP:      a.CEP,
		Street:   a.Street,
		District: a.District,
		City:     a.City,
		State:    a.State,
	}
}
