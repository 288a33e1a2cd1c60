package models

// Account is the stored ledger record. The identifier is the map key and is
// not part of the record itself.
type Account struct {
	CustomerID string  `json:"customer_id"`
	Balance    float64 `json:"balance"`
}

// AccountCreated is returned once a record has been stored.
type AccountCreated struct {
	AccountID string `json:"account_id"`
}

// TransactionReceipt acknowledges a transfer request. Nothing is booked.
type TransactionReceipt struct {
	Status string  `json:"status"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// StatusResponse is the fixed-shape payload used by liveness checks and
// acknowledgements.
type StatusResponse struct {
	Status string `json:"status"`
}

const (
	TransactionStatusAccepted = "accepted"
	NotificationStatusQueued  = "notification queued"
)
