package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrNoContent signals a query that matched nothing. It is not a failure.
	ErrNoContent = New(
		CodeNoContent,
		"No content",
		http.StatusNoContent,
	)

	// ErrNotModified signals an update payload that carries no changes.
	ErrNotModified = New(
		CodeNotModified,
		"Not modified",
		http.StatusNotModified,
	)

	ErrInvalidDateRange = New(
		CodeInvalidInput,
		"start date must not be after end date",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}

func InvalidID(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("Invalid %s", field),
		http.StatusBadRequest,
	)
}
