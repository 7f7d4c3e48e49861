package models

// TransactionType is the caller-supplied direction of a transaction.
// It is never persisted; the sign of Amount carries it.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction represents a row of the transactions ledger table
type Transaction struct {
	ID        string  `json:"id" db:"id"`
	Title     string  `json:"title" db:"title"`
	Amount    float64 `json:"amount" db:"amount"`
	SessionID *string `json:"session_id" db:"session_id"`
}

// CreateTransactionRequest is the body accepted when creating a transaction.
// Title and Amount are pointers so that an empty title or a zero amount is
// still distinguishable from a missing field.
type CreateTransactionRequest struct {
	Title  *string         `json:"title" validate:"required"`
	Amount *float64        `json:"amount" validate:"required"`
	Type   TransactionType `json:"type" validate:"required,oneof=credit debit"`
}

// SignedAmount returns the amount as it must be stored for the request type
func (r CreateTransactionRequest) SignedAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	if r.Type == TransactionTypeDebit {
		return -*r.Amount
	}
	return *r.Amount
}

// TransactionSummary holds the aggregate over the ledger.
// Amount is nil when the table is empty, mirroring SQL SUM over no rows.
type TransactionSummary struct {
	Amount *float64 `json:"amount" db:"amount"`
}

// TransactionListResponse is the body of the list endpoint
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// TransactionResponse is the body of the get-by-id endpoint
type TransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

// SummaryResponse is the body of the summary endpoint
type SummaryResponse struct {
	Transactions TransactionSummary `json:"transactions"`
}

// MessageResponse is a body carrying a single human readable message
type MessageResponse struct {
	Message string `json:"message"`
}
