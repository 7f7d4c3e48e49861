package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/sessionledger/internal/pkg/models"
)

// Validator adapts go-playground/validator to echo.Validator and reports
// failures as *models.ValidationError.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their json tag
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks i against its validate struct tags
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &models.ValidationError{Issues: []models.FieldIssue{{Field: "", Message: err.Error()}}}
	}

	issues := make([]models.FieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, models.FieldIssue{
			Field:   fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return &models.ValidationError{Issues: issues}
}

// UUID reports whether s is a canonical hyphenated UUID. Hex digits may be
// upper or lower case.
func (v *Validator) UUID(field, s string) error {
	if err := v.validate.Var(strings.ToLower(s), "required,uuid"); err != nil {
		return models.NewValidationError(field, "must be a valid UUID")
	}
	return nil
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
