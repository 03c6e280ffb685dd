package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its classification", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("load: %w", apperror.ErrNotModified)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotModified, got.Status)
		assert.True(t, apperror.IsBodyless(got.Status))
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestAppError_Is(t *testing.T) {
	cause := errors.New("boom")
	wrapped := apperror.ErrInvalidInput.WithCause(cause)

	assert.ErrorIs(t, wrapped, apperror.ErrInvalidInput)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, apperror.ErrNotFound)
	assert.Equal(t, "The provided input is invalid: boom", wrapped.Error())
}

type payload struct {
	HiringDate string   `json:"hiring_date" binding:"required"`
	Salary     *float64 `json:"salary" binding:"omitempty,gte=0"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required field uses json name", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(payload{})
		got := apperror.MapValidationError(err)
		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, "Hiring Date is required", got.Message)
	})

	t.Run("lower bound", func(t *testing.T) {
		neg := -1.0
		err := binding.Validator.ValidateStruct(payload{HiringDate: "2024-01-01", Salary: &neg})
		got := apperror.MapValidationError(err)
		assert.Equal(t, "Salary must be at least 0", got.Message)
	})

	t.Run("non validation error", func(t *testing.T) {
		got := apperror.MapValidationError(errors.New("EOF"))
		assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
		assert.Equal(t, "Invalid input", got.Message)
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("empty collector is nil", func(t *testing.T) {
		var errs apperror.FieldErrors
		errs.Required("name", "Ada")
		assert.NoError(t, errs.Err())
	})

	t.Run("collects every field", func(t *testing.T) {
		var errs apperror.FieldErrors
		errs.Required("name", "  ")
		errs.Required("hiring_date", "")
		errs.MaxLen("surname", "Lovelace", 3)

		err := errs.Err()
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, "Name is required", got.Message)
		assert.ErrorIs(t, err, apperror.RequiredField("Name"))

		details, ok := got.Details.([]apperror.FieldError)
		assert.True(t, ok)
		assert.Equal(t, []apperror.FieldError{
			{Field: "name", Message: "Name is required"},
			{Field: "hiring_date", Message: "Hiring Date is required"},
			{Field: "surname", Message: "Surname must be at most 3 characters"},
		}, details)
	})
}
