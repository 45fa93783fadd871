package request

import (
	"testing"
)

func TestServiceOrderRequest_ToEntity(t *testing.T) {
	r := ServiceOrderRequest{
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
		MechanicID:  "mec-1",
		Budget:      350.50,
		HomeService: true,
		Address: &AddressRequest{
			CEP:    "01001000",
			Street: "Praça da Sé",
			City:   "São Paulo",
			State:  "SP",
		},
	}

	o := r.ToEntity("order-1")
	if o.ID != "order-1" || o.CustomerID != "cust-1" || o.Budget != 350.50 {
		t.Fatalf("unexpected entity: %+v", o)
	}
	if o.ServiceAddress == nil || o.ServiceAddress.City != "São Paulo" {
		t.Fatalf("unexpected address: %+v", o.ServiceAddress)
	}
	if o.Status != "" || o.PaymentID != "" {
		t.Fatalf("status and payment_id must not come from the request: %+v", o)
	}
}

func TestServiceOrderRequest_ToEntityWithoutAddress(t *testing.T) {
	r := ServiceOrderRequest{CustomerID: "cust-1", VehicleID: "veh-1", MechanicID: "mec-1", Budget: 100}

	o := r.ToEntity("order-2")
	if o.ServiceAddress != nil {
		t.Fatalf("expected nil address, got %+v", o.ServiceAddress)
	}
}
