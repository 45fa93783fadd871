package entities

// Address is embedded in Customer and optionally in ServiceOrder (home
// service). CEP is the Brazilian postal code, 8 digits without the dash.

type Address struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Complement string `json:"complement,omitempty"`
}

func (a Address) IsZero() bool {
	return a.CEP == "" && a.Street == "" && a.City == ""
}
