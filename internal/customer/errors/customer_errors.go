package customererrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidCustomerID = apperror.InvalidID("customer ID")
	ErrInvalidEmployeeID = apperror.InvalidID("employee ID")
)
