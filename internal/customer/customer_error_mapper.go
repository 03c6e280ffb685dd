package customer

import (
	"errors"

	customererrors "go-workforce/internal/customer/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const foreignKeyViolation = "23503"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customererrors.ErrCustomerNotFound
	}

	// The only foreign key on customers points at employees.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return customererrors.ErrEmployeeNotFound
	}

	return err
}
