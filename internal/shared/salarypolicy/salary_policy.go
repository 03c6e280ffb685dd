// Package salarypolicy ties an employee's salary to the minimum salary of
// the role it holds. A role minimum of zero means the role has no floor.
package salarypolicy

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var ErrSalaryBelowRoleMinimum = apperror.New(
	apperror.CodeSalaryBelowMinimum,
	"employee's salary cannot be lower than the role's minimum salary",
	http.StatusBadRequest,
)

// Resolve returns the salary to store for a candidate under a role minimum.
// A nil candidate means the caller did not provide one.
func Resolve(candidate *float64, minSalary float64) (float64, error) {
	if minSalary <= 0 {
		if candidate == nil {
			return 0, nil
		}
		return *candidate, nil
	}

	if candidate == nil {
		return minSalary, nil
	}
	if *candidate < minSalary {
		return 0, ErrSalaryBelowRoleMinimum
	}
	return *candidate, nil
}
