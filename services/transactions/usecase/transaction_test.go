package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/sessionledger/internal/pkg/models"
	"github.com/piresc/sessionledger/services/transactions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestNewTransactionUC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	assert.NotNil(t, uc)
	assert.Equal(t, mockRepo, uc.transactionRepo)
	assert.NotNil(t, uc.validator)
}

func TestListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	expected := []models.Transaction{{ID: uuid.New().String(), Title: "Salary", Amount: 5000}}
	mockRepo.EXPECT().ListTransactions(gomock.Any()).Return(expected, nil).Times(1)

	result, err := uc.ListTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	id := uuid.New().String()
	expected := &models.Transaction{ID: id, Title: "Rent", Amount: -1200}
	mockRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(expected, nil).Times(1)

	result, err := uc.GetTransaction(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetTransaction_InvalidIDSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: any call fails the test
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	result, err := uc.GetTransaction(context.Background(), "not-a-uuid")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.NotErrorIs(t, err, models.ErrTransactionNotFound)
}

func TestGetTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	id := uuid.New().String()
	mockRepo.EXPECT().GetTransaction(gomock.Any(), id).Return(nil, models.ErrTransactionNotFound).Times(1)

	result, err := uc.GetTransaction(context.Background(), id)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)
	assert.NotErrorIs(t, err, models.ErrInvalidInput)
}

func TestGetSummary(t *testing.T) {
	t.Run("Sum of amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockTransactionRepo(ctrl)
		uc := NewTransactionUC(&models.Config{}, mockRepo)

		mockRepo.EXPECT().SumAmount(gomock.Any()).Return(floatPtr(3800), nil).Times(1)

		summary, err := uc.GetSummary(context.Background())
		require.NoError(t, err)
		require.NotNil(t, summary.Amount)
		assert.Equal(t, 3800.0, *summary.Amount)
	})

	t.Run("Empty ledger stays null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockTransactionRepo(ctrl)
		uc := NewTransactionUC(&models.Config{}, mockRepo)

		mockRepo.EXPECT().SumAmount(gomock.Any()).Return(nil, nil).Times(1)

		summary, err := uc.GetSummary(context.Background())
		require.NoError(t, err)
		assert.Nil(t, summary.Amount)
	})

	t.Run("Storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockTransactionRepo(ctrl)
		uc := NewTransactionUC(&models.Config{}, mockRepo)

		mockRepo.EXPECT().SumAmount(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

		summary, err := uc.GetSummary(context.Background())
		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

func TestCreateTransaction_SignConvention(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		txType     models.TransactionType
		wantAmount float64
	}{
		{name: "credit keeps sign", amount: 5000, txType: models.TransactionTypeCredit, wantAmount: 5000},
		{name: "debit negates", amount: 1200, txType: models.TransactionTypeDebit, wantAmount: -1200},
		{name: "debit of negative flips to positive", amount: -30, txType: models.TransactionTypeDebit, wantAmount: 30},
		{name: "credit of negative stays negative", amount: -30, txType: models.TransactionTypeCredit, wantAmount: -30},
		{name: "fractional debit", amount: 4.5, txType: models.TransactionTypeDebit, wantAmount: -4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTransactionRepo(ctrl)
			uc := NewTransactionUC(&models.Config{}, mockRepo)

			mockRepo.EXPECT().
				CreateTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, transaction *models.Transaction) error {
					assert.Equal(t, tt.wantAmount, transaction.Amount)
					return nil
				}).
				Times(1)

			req := models.CreateTransactionRequest{Title: strPtr("entry"), Amount: floatPtr(tt.amount), Type: tt.txType}
			created, err := uc.CreateTransaction(context.Background(), req, "visitor-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, created.Amount)
		})
	}
}

func TestCreateTransaction_AssignsIDAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	var stored *models.Transaction
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transaction *models.Transaction) error {
			stored = transaction
			return nil
		}).
		Times(1)

	req := models.CreateTransactionRequest{Title: strPtr("Salary"), Amount: floatPtr(5000), Type: models.TransactionTypeCredit}
	_, err := uc.CreateTransaction(context.Background(), req, "visitor-42")
	require.NoError(t, err)

	require.NotNil(t, stored)
	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Salary", stored.Title)
	require.NotNil(t, stored.SessionID)
	assert.Equal(t, "visitor-42", *stored.SessionID)
}

func TestCreateTransaction_EmptySessionStoresNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)
	uc.newID = func() string { return "00000000-0000-4000-8000-000000000001" }

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), &models.Transaction{ID: "00000000-0000-4000-8000-000000000001", Title: "Seed", Amount: 1}).
		Return(nil).
		Times(1)

	req := models.CreateTransactionRequest{Title: strPtr("Seed"), Amount: floatPtr(1), Type: models.TransactionTypeCredit}
	created, err := uc.CreateTransaction(context.Background(), req, "")
	require.NoError(t, err)
	assert.Nil(t, created.SessionID)
}

func TestCreateTransaction_InvalidRequestSkipsStorage(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateTransactionRequest
	}{
		{name: "missing title", req: models.CreateTransactionRequest{Amount: floatPtr(1), Type: models.TransactionTypeCredit}},
		{name: "missing amount", req: models.CreateTransactionRequest{Title: strPtr("x"), Type: models.TransactionTypeCredit}},
		{name: "missing type", req: models.CreateTransactionRequest{Title: strPtr("x"), Amount: floatPtr(1)}},
		{name: "unknown type", req: models.CreateTransactionRequest{Title: strPtr("x"), Amount: floatPtr(1), Type: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTransactionRepo(ctrl)
			uc := NewTransactionUC(&models.Config{}, mockRepo)

			created, err := uc.CreateTransaction(context.Background(), tt.req, "visitor-1")
			assert.Nil(t, created)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestCreateTransaction_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo)

	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

	req := models.CreateTransactionRequest{Title: strPtr("x"), Amount: floatPtr(1), Type: models.TransactionTypeDebit}
	created, err := uc.CreateTransaction(context.Background(), req, "visitor-1")
	assert.Nil(t, created)
	assert.ErrorIs(t, err, assert.AnError)
}
