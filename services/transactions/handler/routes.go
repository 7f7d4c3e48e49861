package handler

import (
	"github.com/labstack/echo/v4"
	transactionhttp "github.com/piresc/sessionledger/services/transactions/handler/http"
)

// Handler aggregates the transport handlers of the transactions service
type Handler struct {
	transactionHandler *transactionhttp.TransactionHandler
}

// NewHandler creates the transactions service handler set
func NewHandler(transactionHandler *transactionhttp.TransactionHandler) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
	}
}

// RegisterRoutes registers the transaction routes under prefix.
// "/summary" is a static route so Echo never matches it as "/:id".
func (h *Handler) RegisterRoutes(e *echo.Echo, prefix string) {
	g := e.Group(prefix)

	g.GET("", h.transactionHandler.ListTransactions)
	if prefix != "" {
		g.GET("/", h.transactionHandler.ListTransactions)
	}
	g.GET("/summary", h.transactionHandler.GetSummary)
	g.GET("/:id", h.transactionHandler.GetTransaction)
	g.POST("", h.transactionHandler.CreateTransaction)
	if prefix != "" {
		g.POST("/", h.transactionHandler.CreateTransaction)
	}
}
