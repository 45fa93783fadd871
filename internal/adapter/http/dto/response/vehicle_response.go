package response

import (
	"time"

	"mecstock/internal/domain/entities"
)

type VehicleResponse struct {
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

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Model:      v.Model,
		Maker:      v.Maker,
		Plate:      v.Plate,
		Fuel:       v.Fuel,
		Year:       v.Year,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
