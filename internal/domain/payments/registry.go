package payments

import "fmt"

// Registry dispatches settlement requests to the handler registered for the
// method. The set of handlers is fixed at construction.

type Registry struct {
	handlers map[Method]Handler
}

// NewRegistry returns a registry with the five supported methods.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[Method]Handler)}
	for _, h := range []Handler{
		cashHandler{},
		cardHandler{method: MethodCreditCard},
		cardHandler{method: MethodDebitCard},
		bankTransferHandler{},
		pixHandler{},
	} {
		r.handlers[h.Method()] = h
	}
	return r
}

// Supported reports whether m is a registered method.
func (r *Registry) Supported(m Method) bool {
	_, ok := r.handlers[m]
	return ok
}

// Dispatch validates the amount, resolves the handler for m and runs it.
func (r *Registry) Dispatch(m Method, amount float64, params Params) (Outcome, error) {
	h, ok := r.handlers[m]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, m)
	}
	if amount <= 0 {
		return Outcome{}, ErrInvalidAmount
	}
	return h.Handle(amount, params)
}
