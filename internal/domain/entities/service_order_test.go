package entities

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	chain := []OrderStatus{
		OrderStatusCadastrado,
		OrderStatusAguardandoAprovacao,
		OrderStatusAprovado,
		OrderStatusEmAndamento,
		OrderStatusDiagnosticoAdic,
		OrderStatusAguardandoPecas,
		OrderStatusFinalizado,
		OrderStatusEntregue,
	}

	for i := 0; i < len(chain)-1; i++ {
		if !chain[i].CanTransitionTo(chain[i+1]) {
			t.Errorf("%s -> %s must be allowed", chain[i], chain[i+1])
		}
	}

	// Skipping a step is not allowed, except the optional diagnostics detour.
	for i := 0; i < len(chain)-2; i++ {
		if chain[i].CanTransitionTo(chain[i+2]) {
			t.Errorf("%s -> %s must be rejected", chain[i], chain[i+2])
		}
	}

	// A repair that needs no additional diagnostics finishes directly.
	if !OrderStatusEmAndamento.CanTransitionTo(OrderStatusFinalizado) {
		t.Error("Em Andamento -> Finalizado must be allowed")
	}
	if OrderStatusEmAndamento.CanTransitionTo(OrderStatusEntregue) {
		t.Error("Em Andamento -> Entregue must be rejected")
	}

	// Going backwards is never allowed.
	for i := 1; i < len(chain); i++ {
		if chain[i].CanTransitionTo(chain[i-1]) {
			t.Errorf("%s -> %s must be rejected", chain[i], chain[i-1])
		}
	}
}

func TestOrderStatus_Cancel(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusCadastrado, OrderStatusAguardandoAprovacao, OrderStatusAprovado,
		OrderStatusEmAndamento, OrderStatusDiagnosticoAdic, OrderStatusAguardandoPecas,
		OrderStatusFinalizado,
	} {
		if !s.CanTransitionTo(OrderStatusCancelado) {
			t.Errorf("%s must be cancellable", s)
		}
	}

	if OrderStatusEntregue.CanTransitionTo(OrderStatusCancelado) {
		t.Error("delivered orders cannot be cancelled")
	}
	if OrderStatusCancelado.CanTransitionTo(OrderStatusCadastrado) {
		t.Error("cancelled orders cannot be reopened")
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	if OrderStatus("Sumido").Valid() {
		t.Error("unknown status must be invalid")
	}
	if !OrderStatusEmAndamento.Valid() {
		t.Error("Em Andamento must be valid")
	}
}
