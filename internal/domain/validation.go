package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput indicates the estimate input violates the form contract.
var ErrInvalidInput = errors.New("invalid estimate input")

// FieldError describes a single rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// ValidationError lists every rejected field of an input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Value != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s (%q)", f.Field, f.Rule, f.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", f.Field, f.Rule))
	}

	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// InputValidator checks estimate inputs against the form contract.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator builds a validator with the estimator's custom rules.
func NewInputValidator() *InputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range map[string]validator.Func{
		"project_type": projectTypeValidator,
		"complexity":   complexityValidator,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
		}
	}

	return &InputValidator{validate: v}
}

// Validate returns a *ValidationError when input is rejected.
func (v *InputValidator) Validate(input EstimateInput) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		})
	}

	return &ValidationError{Fields: fields}
}

func projectTypeValidator(fl validator.FieldLevel) bool {
	return ProjectType(fl.Field().String()).IsValid()
}

func complexityValidator(fl validator.FieldLevel) bool {
	return Complexity(fl.Field().String()).IsValid()
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
