package technologyerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrTechnologyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Technology not found",
		http.StatusNotFound,
	)
	ErrTechnologyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Technology with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidTechnologyID = apperror.InvalidID("technology ID")
)
