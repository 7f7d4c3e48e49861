package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/sessionledger/internal/pkg/models"
)

type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// ListTransactions returns every row of the ledger. No ordering is applied,
// so rows come back in whatever order the storage yields them.
func (r *TransactionRepo) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := `SELECT id, title, amount, session_id FROM transactions`

	transactions := make([]models.Transaction, 0)
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a transaction by ID
func (r *TransactionRepo) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT id, title, amount, session_id FROM transactions WHERE id = $1 LIMIT 1`

	var transaction models.Transaction
	if err := r.db.GetContext(ctx, &transaction, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}

	return &transaction, nil
}

// SumAmount returns the sum of all amounts, or nil when the table is empty
func (r *TransactionRepo) SumAmount(ctx context.Context) (*float64, error) {
	query := `SELECT SUM(amount) AS amount FROM transactions`

	var sum sql.NullFloat64
	if err := r.db.QueryRowxContext(ctx, query).Scan(&sum); err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	if !sum.Valid {
		return nil, nil
	}
	return &sum.Float64, nil
}

// CreateTransaction inserts a single new row
func (r *TransactionRepo) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, title, amount, session_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.Title,
		transaction.Amount,
		transaction.SessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}
