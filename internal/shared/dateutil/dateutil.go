// Package dateutil parses the calendar dates accepted by the API.
//
// Dates are accepted as yyyy-MM-dd or dd-MM-yyyy and always rendered as
// yyyy-MM-dd. No timezone is involved: parsed values are midnight UTC.
package dateutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-workforce/internal/shared/apperror"
)

const (
	LayoutISO      = "2006-01-02"
	LayoutEuropean = "02-01-2006"
)

var layouts = []string{LayoutISO, LayoutEuropean}

var ErrInvalidDateFormat = errors.New("invalid date format")

// Parse tries every accepted layout in order.
func Parse(text string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, text)
}

// ParseField parses text and reports failures against the given field label,
// e.g. "start date: invalid date format".
func ParseField(field, text string) (time.Time, error) {
	t, err := Parse(text)
	if err != nil {
		return time.Time{}, InvalidDate(field, err)
	}
	return t, nil
}

// ParseOptionalField treats a nil or blank value as "no date".
func ParseOptionalField(field string, text *string) (*time.Time, error) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, nil
	}
	t, err := ParseField(field, strings.TrimSpace(*text))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func InvalidDate(field string, cause error) *apperror.AppError {
	return apperror.Wrap(
		cause,
		apperror.CodeInvalidDateFormat,
		fmt.Sprintf("%s: invalid date format", field),
		http.StatusBadRequest,
	)
}

func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := Format(*t)
	return &v
}

// ValidateRange rejects a range whose start falls after its end. Open ends are allowed.
func ValidateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return apperror.ErrInvalidDateRange
	}
	return nil
}
