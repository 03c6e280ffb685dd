package roleerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeInvalidState,
		"Role is still assigned to employees",
		http.StatusBadRequest,
	)
	ErrMinSalaryAboveHolders = apperror.New(
		apperror.CodeInvalidState,
		"Minimum salary exceeds the salary of employees holding this role",
		http.StatusConflict,
	)
	ErrInvalidRoleID = apperror.InvalidID("role ID")
)
