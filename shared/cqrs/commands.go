package cqrs

type CreateAccountCommand struct {
	CustomerID     string
	InitialBalance float64
}

type AcceptTransactionCommand struct {
	FromAccount string
	ToAccount   string
	Amount      float64
}

type NotifyCommand struct {
	Message string
}
