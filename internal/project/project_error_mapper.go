package project

import (
	"errors"
	"strings"

	projecterrors "go-workforce/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	pkProjectEmployees  = "project_employees_pkey"

	fkProjectEmployeesEmployee = "fk_project_employees_employee"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if pgErr.ConstraintName == pkProjectEmployees {
				return projecterrors.ErrEmployeeAlreadyAssigned
			}
		case foreignKeyViolation:
			if pgErr.ConstraintName == fkProjectEmployeesEmployee {
				return projecterrors.ErrEmployeeNotFound
			}
			return projecterrors.ErrProjectNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, pkProjectEmployees) {
		return projecterrors.ErrEmployeeAlreadyAssigned
	}

	return err
}
