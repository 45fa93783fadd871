package entities

import "time"

// OrderStatus is the lifecycle of a service order (ordem de serviço).
//
// The lifecycle is a forward chain plus a Cancelado exit reachable from every
// non-terminal state. Transitions outside the table are rejected.

type OrderStatus string

const (
	OrderStatusCadastrado          OrderStatus = "Cadastrado"
	OrderStatusAguardandoAprovacao OrderStatus = "Aguardando Aprovação"
	OrderStatusAprovado            OrderStatus = "Aprovado"
	OrderStatusEmAndamento         OrderStatus = "Em Andamento"
	OrderStatusDiagnosticoAdic     OrderStatus = "Diagnóstico Adicional"
	OrderStatusAguardandoPecas     OrderStatus = "Aguardando Peças"
	OrderStatusFinalizado          OrderStatus = "Finalizado"
	OrderStatusEntregue            OrderStatus = "Entregue"
	OrderStatusCancelado           OrderStatus = "Cancelado"
)

// orderStatusNext maps each status to its allowed successors. The diagnostics
// detour (Diagnóstico Adicional, Aguardando Peças) is optional: a repair that
// needs neither goes from Em Andamento straight to Finalizado.
var orderStatusNext = map[OrderStatus][]OrderStatus{
	OrderStatusCadastrado:          {OrderStatusAguardandoAprovacao},
	OrderStatusAguardandoAprovacao: {OrderStatusAprovado},
	OrderStatusAprovado:            {OrderStatusEmAndamento},
	OrderStatusEmAndamento:         {OrderStatusDiagnosticoAdic, OrderStatusFinalizado},
	OrderStatusDiagnosticoAdic:     {OrderStatusAguardandoPecas},
	OrderStatusAguardandoPecas:     {OrderStatusFinalizado},
	OrderStatusFinalizado:          {OrderStatusEntregue},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCadastrado, OrderStatusAguardandoAprovacao, OrderStatusAprovado,
		OrderStatusEmAndamento, OrderStatusDiagnosticoAdic, OrderStatusAguardandoPecas,
		OrderStatusFinalizado, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusEntregue || s == OrderStatusCancelado
}

// CanTransitionTo reports whether moving from s to target is allowed:
// a successor in the chain, or Cancelado from any non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !s.Valid() || !target.Valid() || s.Terminal() {
		return false
	}
	if target == OrderStatusCancelado {
		return true
	}
	for _, next := range orderStatusNext[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ServiceOrder is one repair job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// PaymentID is set at most once; once linked, repeat settlements mutate the
// same Payment row instead of replacing the link. The repository enforces
// that with a conditional transactional write.

type ServiceOrder struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customer_id"`
	VehicleID      string      `json:"vehicle_id"`
	MechanicID     string      `json:"mechanic_id"`
	Diagnosis      string      `json:"diagnosis"`
	Description    string      `json:"description"`
	Budget         float64     `json:"budget"`
	EntryDate      time.Time   `json:"entry_date"`
	ExpectedExit   time.Time   `json:"expected_exit_date"`
	Status         OrderStatus `json:"status"`
	PaymentID      string      `json:"payment_id,omitempty"`
	Returned       bool        `json:"returned"`
	HomeService    bool        `json:"home_service"`
	ServiceAddress *Address    `json:"service_address,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
