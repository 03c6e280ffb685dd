package employee

import (
	"errors"
	"strings"

	employeeerrors "go-workforce/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	pkEmployeeTech      = "employee_technologies_pkey"

	fkEmployeeRole           = "fk_employees_role"
	fkEmployeeTechTechnology = "fk_employee_technologies_technology"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if pgErr.ConstraintName == pkEmployeeTech {
				return employeeerrors.ErrTechnologyAlreadyAssigned
			}
		case foreignKeyViolation:
			if pgErr.ConstraintName == fkEmployeeRole {
				return employeeerrors.ErrRoleNotFound
			}
			if pgErr.ConstraintName == fkEmployeeTechTechnology {
				return employeeerrors.ErrTechnologyNotFound
			}
			return employeeerrors.ErrEmployeeInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, pkEmployeeTech) {
		return employeeerrors.ErrTechnologyAlreadyAssigned
	}

	return err
}

// mapRoleLookupError reports a missing role as RoleNotFound rather than EmployeeNotFound.
func mapRoleLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrRoleNotFound
	}
	return mapRepositoryError(err)
}
