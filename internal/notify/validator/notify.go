package validator

import (
	"errors"
	"fmt"
	"strings"

	"roombook/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// NotifyValidator validates both notification payload shapes; the
// struct tags carry the per-channel rules.
type NotifyValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewNotifyValidator(log *logger.Logger) *NotifyValidator {
	return &NotifyValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (nv *NotifyValidator) Validate(payload any) error {
	if err := nv.validate.Struct(payload); err != nil {
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			return fmt.Errorf("invalid validation input: %w", err)
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			out := make(ValidationErrors, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				out = append(out, ValidationError{
					Field:   fe.Field(),
					Message: messageFor(fe),
				})
			}
			return out
		}
		return err
	}

	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return fmt.Sprintf("must match format %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
