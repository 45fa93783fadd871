package request

import (
	"time"

	"mecstock/internal/domain/entities"
)

// ServiceOrderRequest covers create and update. Status is deliberately
// absent: status changes go through the dedicated status route.

type ServiceOrderRequest struct {
	CustomerID   string          `json:"customer_id" binding:"required"`
	VehicleID    string          `json:"vehicle_id" binding:"required"`
	MechanicID   string          `json:"mechanic_id" binding:"required"`
	Diagnosis    string          `json:"diagnosis"`
	Description  string          `json:"description"`
	Budget       float64         `json:"budget" binding:"required"`
	EntryDate    time.Time       `json:"entry_date"`
	ExpectedExit time.Time       `json:"expected_exit_date"`
	Returned     bool            `json:"returned"`
	HomeService  bool            `json:"home_service"`
	Address      *AddressRequest `json:"service_address"`
}

func (r ServiceOrderRequest) ToEntity(id string) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:           id,
		CustomerID:   r.CustomerID,
		VehicleID:    r.VehicleID,
		MechanicID:   r.MechanicID,
		Diagnosis:    r.Diagnosis,
		Description:  r.Description,
		Budget:       r.Budget,
		EntryDate:    r.EntryDate,
		ExpectedExit: r.ExpectedExit,
		Returned:     r.Returned,
		HomeService:  r.HomeService,
	}
	if r.Address != nil {
		addr := r.Address.ToEntity()
		o.ServiceAddress = &addr
	}
	return o
}

// StatusUpdateRequest is the payload for the status route.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
