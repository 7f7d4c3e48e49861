package usecase

import (
	"github.com/google/uuid"
	"github.com/piresc/sessionledger/internal/pkg/models"
	"github.com/piresc/sessionledger/internal/pkg/validator"
	"github.com/piresc/sessionledger/services/transactions"
)

// TransactionUC implements the transaction use case interface
type TransactionUC struct {
	cfg             *models.Config
	transactionRepo transactions.TransactionRepo
	validator       *validator.Validator
	newID           func() string
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	transactionRepo transactions.TransactionRepo,
) *TransactionUC {
	return &TransactionUC{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		validator:       validator.New(),
		newID:           func() string { return uuid.New().String() },
	}
}
