package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/models"
)

const (
	messageNotFound     = "Not found"
	messageInvalidInput = "Invalid input"
	messageInvalidBody  = "Invalid request body"
	messageCreated      = "Transação criada com sucesso"
)

// ValidationErrorResponse is returned for requests that fail validation
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Issues  []models.FieldIssue `json:"issues,omitempty"`
}

// respondError maps error kinds to HTTP responses. Errors of unknown kind are
// returned to Echo so the central error handler logs them and answers 500.
func respondError(c echo.Context, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Message: messageInvalidInput,
			Issues:  verr.Issues,
		})
	case errors.Is(err, models.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Message: messageInvalidInput})
	case errors.Is(err, models.ErrTransactionNotFound):
		return c.JSON(http.StatusNotFound, models.MessageResponse{Message: messageNotFound})
	default:
		return err
	}
}
