// Package contact sends contact form submissions to a form-relay endpoint.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingField is returned when a required form field is empty.
	ErrMissingField = errors.New("contact: missing required field")
	// ErrRejected is returned when the endpoint answers without success.
	ErrRejected = errors.New("contact: submission rejected")
	// ErrThrottled is returned when a submission arrives inside the
	// throttle window of the previous one.
	ErrThrottled = errors.New("contact: submission throttled")
	// ErrNotConfigured is returned when no access key is set.
	ErrNotConfigured = errors.New("contact: access key not configured")
)

// Form is the contact form as filled in by the visitor.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Trimmed returns the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks that the required fields are non-blank. Content is not
// otherwise inspected; the relay does its own checks.
func (f Form) Validate() error {
	err := validate.Struct(f.Trimmed())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("contact: cannot validate form: %w", err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, strings.ToLower(fe.Field())))
	}
	return errors.Join(errs...)
}
