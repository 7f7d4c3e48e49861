package transactions

import (
	"context"

	"github.com/piresc/sessionledger/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/sessionledger/services/transactions TransactionRepo
type TransactionRepo interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	SumAmount(ctx context.Context) (*float64, error)
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
}
