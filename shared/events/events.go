package events

import "time"

// Event types
const (
	AccountCreated       = "account.created"
	TransactionAccepted  = "transaction.accepted"
	NotificationReceived = "notification.received"
)

// Stream names
const (
	AccountEventsStream      = "account.events"
	TransactionEventsStream  = "transaction.events"
	NotificationEventsStream = "notification.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	AccountID  string  `json:"accountId"`
	CustomerID string  `json:"customerId"`
	Balance    float64 `json:"balance"`
}

type TransactionAcceptedEvent struct {
	FromAccount string  `json:"fromAccount"`
	ToAccount   string  `json:"toAccount"`
	Amount      float64 `json:"amount"`
}

type NotificationReceivedEvent struct {
	Length int `json:"length"`
}
