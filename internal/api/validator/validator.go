package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/restful-booker/messaging/internal/metrics"
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
	Messages(errs []Error, format string) []string
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(metrics *metrics.Metrics) IXValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	for key, function := range valid {
		_ = v.RegisterValidation(key, function)
	}

	return &XValidator{validator: v, metrics: metrics}
}

func (x *XValidator) Validate(data interface{}) []Error {
	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []Error{{FailedField: "request", Tag: "invalid"}}
	}

	errs := make([]Error, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errs = append(errs, Error{
			FailedField: fieldErr.Field(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Value(),
		})

		if x.metrics != nil {
			x.metrics.RecordValidationError(fieldErr.Field(), fieldErr.Tag())
		}
	}

	return errs
}

func (x *XValidator) Messages(errs []Error, format string) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, fmt.Sprintf(format, err.FailedField))
	}

	return messages
}
