package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and adapters.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrDraftClosed  = errors.New("draft is closed")
)

// Validation failure codes carried by FieldError.Code.
const (
	CodeRequired             = "required"
	CodeDateRange            = "date_range"
	CodeTimeRange            = "time_range"
	CodeInvalidTime          = "invalid_time"
	CodeInvalidPrice         = "invalid_price"
	CodeInvalidQuantity      = "invalid_quantity"
	CodeInvalidDiscount      = "invalid_discount"
	CodeInvalidType          = "invalid_type"
	CodeInvalidLevel         = "invalid_level"
	CodeUnknownSpeaker       = "unknown_speaker"
	CodeConfirmationRequired = "confirmation_required"
	CodeTicketTypeRequired   = "ticket_type_required"
	CodeSaleClosed           = "sale_closed"
)

// FieldError names one offending field and why it was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError reports user-correctable input problems. All failures found
// by one operation are carried together.
type ValidationError struct {
	Failures []FieldError `json:"failures"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match any ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Has reports whether any failure carries the given code.
func (e *ValidationError) Has(code string) bool {
	for _, f := range e.Failures {
		if f.Code == code {
			return true
		}
	}
	return false
}

// NewValidationError builds a ValidationError from failures.
func NewValidationError(failures ...FieldError) *ValidationError {
	return &ValidationError{Failures: failures}
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// validationErrorOrNil returns nil for an empty failure list so callers can
// write `if err := validationErrorOrNil(fs); err != nil`.
func validationErrorOrNil(failures []FieldError) error {
	if len(failures) == 0 {
		return nil
	}
	return NewValidationError(failures...)
}
