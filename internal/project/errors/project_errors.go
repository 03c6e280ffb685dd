package projecterrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyAssigned = apperror.New(
		apperror.CodeInvalidAssociation,
		"Employee is already assigned to this project",
		http.StatusBadRequest,
	)
	ErrEmployeeNotAssigned = apperror.New(
		apperror.CodeInvalidAssociation,
		"Employee is not assigned to this project",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID  = apperror.InvalidID("project ID")
	ErrInvalidEmployeeID = apperror.InvalidID("employee ID")
)
