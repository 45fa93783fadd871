package payments

// cashHandler has no parameter contract; a positive amount is enough.

type cashHandler struct{}

func (cashHandler) Method() Method { return MethodCash }

func (cashHandler) Handle(amount float64, _ Params) (Outcome, error) {
	return Outcome{
		Method:               MethodCash,
		Amount:               amount,
		Status:               outcomeSuccess,
		TransactionReference: newTransactionReference("CASH"),
	}, nil
}
