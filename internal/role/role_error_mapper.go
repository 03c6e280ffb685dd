package role

import (
	"errors"
	"strings"

	roleerrors "go-workforce/internal/role/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	uqRoleName          = "uq_roles_name_lower"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return roleerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if pgErr.ConstraintName == uqRoleName {
				return roleerrors.ErrRoleAlreadyExists
			}
		case foreignKeyViolation:
			return roleerrors.ErrRoleInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uqRoleName) {
		return roleerrors.ErrRoleAlreadyExists
	}

	return err
}
