package cqrs

// ---------- Account queries ----------

// GetAccountQuery fetches a single account record by its generated ID.
type GetAccountQuery struct {
	AccountID string
}
