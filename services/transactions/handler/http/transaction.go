package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/models"
	"github.com/piresc/sessionledger/internal/pkg/session"
	"github.com/piresc/sessionledger/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
	sessions      *session.Resolver
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(transactionUC transactions.TransactionUC, sessions *session.Resolver) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		sessions:      sessions,
	}
}

// ListTransactions returns every transaction
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	result, err := h.transactionUC.ListTransactions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.TransactionListResponse{Transactions: result})
}

// GetTransaction returns a single transaction by its UUID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id := c.Param("id")

	result, err := h.transactionUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.TransactionResponse{Transaction: result})
}

// GetSummary returns the sum of all amounts
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	summary, err := h.transactionUC.GetSummary(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.SummaryResponse{Transactions: *summary})
}

// CreateTransaction validates the body, resolves the visitor session and
// stores a new transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Message: messageInvalidBody})
	}

	// Validate before the session cookie is issued; the use case validates
	// again because it is also called without this handler
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sessionID := h.sessions.Resolve(c)

	if _, err := h.transactionUC.CreateTransaction(c.Request().Context(), req, sessionID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.MessageResponse{Message: messageCreated})
}
