package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects explicit validation failures for one payload.
type FieldErrors []FieldError

func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

// Required records field when value is blank after trimming.
func (f *FieldErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.Add(field, fmt.Sprintf("%s is required", formatFieldName(field)))
	}
}

// MaxLen records field when its trimmed value is longer than n runes.
func (f *FieldErrors) MaxLen(field, value string, n int) {
	if len([]rune(strings.TrimSpace(value))) > n {
		f.Add(field, fmt.Sprintf("%s must be at most %d characters", formatFieldName(field), n))
	}
}

// Err returns nil when nothing was recorded. Otherwise the error carries the
// first message and lists every field in Details.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &AppError{
		Code:       CodeValidation,
		Message:    f[0].Message,
		HTTPStatus: http.StatusBadRequest,
		Details:    []FieldError(f),
	}
}
