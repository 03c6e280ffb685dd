package role

import (
	"strings"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/patch"
)

type CreateRoleRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	MinSalary *float64 `json:"min_salary" binding:"omitempty,gte=0"`
}

func (r CreateRoleRequest) Validate() error {
	var errs apperror.FieldErrors
	errs.Required("name", r.Name)
	if r.MinSalary != nil && *r.MinSalary < 0 {
		errs.Add("min_salary", "Min Salary must be at least 0")
	}
	return errs.Err()
}

// UpdateRoleRequest carries only the fields to change.
type UpdateRoleRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=100"`
	MinSalary *float64 `json:"min_salary" binding:"omitempty,gte=0"`
}

func (r UpdateRoleRequest) IsAllEmpty() bool {
	return patch.IsBlank(r.Name) && r.MinSalary == nil
}

type RoleFilter struct {
	Name      string
	MinSalary *float64
}

func (f RoleFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == "" && f.MinSalary == nil
}

type RoleResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinSalary float64 `json:"min_salary"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type RoleEmployeeResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Salary  float64 `json:"salary"`
}
