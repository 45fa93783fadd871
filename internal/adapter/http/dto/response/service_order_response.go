package response

import (
	"time"

	"mecstock/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID             string            `json:"id"`
	CustomerID     string            `json:"customer_id"`
	VehicleID      string            `json:"vehicle_id"`
	MechanicID     string            `json:"mechanic_id"`
	Diagnosis      string            `json:"diagnosis"`
	Description    string            `json:"description"`
	Budget         float64           `json:"budget"`
	EntryDate      time.Time         `json:"entry_date"`
	ExpectedExit   time.Time         `json:"expected_exit_date"`
	Status         string            `json:"status"`
	PaymentID      string            `json:"payment_id,omitempty"`
	Returned       bool              `json:"returned"`
	HomeService    bool              `json:"home_service"`
	ServiceAddress *entities.Address `json:"service_address,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		VehicleID:      o.VehicleID,
		MechanicID:     o.MechanicID,
		Diagnosis:      o.Diagnosis,
		Description:    o.Description,
		Budget:         o.Budget,
		EntryDate:      o.EntryDate,
		ExpectedExit:   o.ExpectedExit,
		Status:         string(o.Status),
		PaymentID:      o.PaymentID,
		Returned:       o.Returned,
		HomeService:    o.HomeService,
		ServiceAddress: o.ServiceAddress,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
