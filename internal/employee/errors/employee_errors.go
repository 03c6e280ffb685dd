package employeeerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrTechnologyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Technology not found",
		http.StatusNotFound,
	)
	ErrTechnologyAlreadyAssigned = apperror.New(
		apperror.CodeInvalidAssociation,
		"Technology is already assigned to this employee",
		http.StatusBadRequest,
	)
	ErrTechnologyNotAssigned = apperror.New(
		apperror.CodeInvalidAssociation,
		"Technology is not assigned to this employee",
		http.StatusBadRequest,
	)
	ErrEmployeeInUse = apperror.New(
		apperror.CodeInvalidState,
		"Employee is still referenced by other records",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID   = apperror.InvalidID("employee ID")
	ErrInvalidTechnologyID = apperror.InvalidID("technology ID")
)
