package request

import "mecstock/internal/domain/entities"

type VehicleRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Maker      string `json:"maker"`
	Plate      string `json:"plate" binding:"required"`
	Fuel       string `json:"fuel"`
	Year       int    `json:"year"`
}

func (r VehicleRequest) ToEntity(id string) entities.Vehicle {
	return entities.Vehicle{
		ID:         id,
		CustomerID: r.CustomerID,
		Model:      r.Model,
		Maker:      r.Maker,
		Plate:      r.Plate,
		Fuel:       r.Fuel,
		Year:       r.Year,
	}
}
