// Package patch applies partial updates: a nil field, or a blank string,
// leaves the stored value untouched.
package patch

import (
	"strings"
	"time"
)

func IsBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

// Present reports whether a text field carries a change.
func Present(v *string) bool {
	return !IsBlank(v)
}

// String overwrites dst with src when src carries a change. It reports whether dst changed.
func String(dst *string, src *string) bool {
	if IsBlank(src) {
		return false
	}
	v := strings.TrimSpace(*src)
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func Float64(dst *float64, src *float64) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

func Int(dst *int, src *int) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

// Date overwrites a nullable date column.
func Date(dst **time.Time, src *time.Time) bool {
	if src == nil {
		return false
	}
	if *dst != nil && (*dst).Equal(*src) {
		return false
	}
	v := *src
	*dst = &v
	return true
}

// AllBlank reports whether every text field is nil or blank.
func AllBlank(fields ...*string) bool {
	for _, f := range fields {
		if !IsBlank(f) {
			return false
		}
	}
	return true
}
