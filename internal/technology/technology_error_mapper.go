package technology

import (
	"errors"
	"strings"

	technologyerrors "go-workforce/internal/technology/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation  = "23505"
	uqTechnologyName = "uq_technologies_name"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return technologyerrors.ErrTechnologyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == uqTechnologyName {
		return technologyerrors.ErrTechnologyAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uqTechnologyName) {
		return technologyerrors.ErrTechnologyAlreadyExists
	}

	return err
}
