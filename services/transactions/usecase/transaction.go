package usecase

import (
	"context"

	"github.com/piresc/sessionledger/internal/pkg/logger"
	"github.com/piresc/sessionledger/internal/pkg/models"
)

// ListTransactions returns every transaction in storage order
func (uc *TransactionUC) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return uc.transactionRepo.ListTransactions(ctx)
}

// GetTransaction validates id as a UUID before looking it up
func (uc *TransactionUC) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	if err := uc.validator.UUID("id", id); err != nil {
		return nil, err
	}

	return uc.transactionRepo.GetTransaction(ctx, id)
}

// GetSummary returns the sum of all amounts. The amount stays nil on an
// empty ledger rather than being reported as zero.
func (uc *TransactionUC) GetSummary(ctx context.Context) (*models.TransactionSummary, error) {
	amount, err := uc.transactionRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &models.TransactionSummary{Amount: amount}, nil
}

// CreateTransaction validates the request, applies the credit/debit sign and
// inserts one new row scoped to sessionID.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest, sessionID string) (*models.Transaction, error) {
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ID:     uc.newID(),
		Title:  *req.Title,
		Amount: req.SignedAmount(),
	}
	if sessionID != "" {
		transaction.SessionID = &sessionID
	}

	if err := uc.transactionRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	logger.Debug("Transaction created", logger.Fields{
		"transaction_id": transaction.ID,
		"type":           string(req.Type),
		"session_id":     sessionID,
	})

	return transaction, nil
}
