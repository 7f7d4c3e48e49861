package transactions

import (
	"context"

	"github.com/piresc/sessionledger/internal/pkg/models"
)

// TransactionUC defines the interface for transaction business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/sessionledger/services/transactions TransactionUC
type TransactionUC interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	GetSummary(ctx context.Context) (*models.TransactionSummary, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest, sessionID string) (*models.Transaction, error)
}
