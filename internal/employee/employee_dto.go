package employee

import (
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/patch"
)

const nameMaxLen = 100

type CreateEmployeeRequest struct {
	Name            string   `json:"name" binding:"required"`
	Surname         string   `json:"surname" binding:"required"`
	HiringDate      string   `json:"hiring_date" binding:"required"`
	RoleName        string   `json:"role_name" binding:"required"`
	Salary          *float64 `json:"salary" binding:"omitempty,gte=0"`
	ExperienceLevel *int     `json:"experience_level" binding:"omitempty,gte=0"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs apperror.FieldErrors
	errs.Required("name", r.Name)
	errs.MaxLen("name", r.Name, nameMaxLen)
	errs.Required("surname", r.Surname)
	errs.MaxLen("surname", r.Surname, nameMaxLen)
	errs.Required("hiring_date", r.HiringDate)
	errs.Required("role_name", r.RoleName)
	if r.Salary != nil && *r.Salary < 0 {
		errs.Add("salary", "Salary must be at least 0")
	}
	if r.ExperienceLevel != nil && *r.ExperienceLevel < 0 {
		errs.Add("experience_level", "Experience Level must be at least 0")
	}
	return errs.Err()
}

// UpdateEmployeeRequest carries only the fields to change. Blank strings
// count as absent.
type UpdateEmployeeRequest struct {
	Name            *string  `json:"name"`
	Surname         *string  `json:"surname"`
	HiringDate      *string  `json:"hiring_date"`
	RoleName        *string  `json:"role_name"`
	Salary          *float64 `json:"salary" binding:"omitempty,gte=0"`
	ExperienceLevel *int     `json:"experience_level" binding:"omitempty,gte=0"`
}

func (r UpdateEmployeeRequest) IsAllEmpty() bool {
	return patch.AllBlank(r.Name, r.Surname, r.HiringDate, r.RoleName) &&
		r.Salary == nil &&
		r.ExperienceLevel == nil
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs apperror.FieldErrors
	if r.Name != nil {
		errs.MaxLen("name", *r.Name, nameMaxLen)
	}
	if r.Surname != nil {
		errs.MaxLen("surname", *r.Surname, nameMaxLen)
	}
	return errs.Err()
}

// EmployeeFilter holds raw query parameters; dates are parsed by the service.
type EmployeeFilter struct {
	Surname   string
	StartDate string
	EndDate   string
}

// EmployeeQuery is a parsed EmployeeFilter.
type EmployeeQuery struct {
	Surname   string
	StartDate *time.Time
	EndDate   *time.Time
}

type EmployeeRoleResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinSalary float64 `json:"min_salary"`
}

type EmployeeResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Surname         string                `json:"surname"`
	HiringDate      string                `json:"hiring_date"`
	ExperienceLevel int                   `json:"experience_level"`
	Salary          float64               `json:"salary"`
	RoleID          string                `json:"role_id"`
	Role            *EmployeeRoleResponse `json:"role,omitempty"`
}

type EmployeeTechnologyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type AssignmentResponse struct {
	EmployeeID   string `json:"employee_id"`
	TechnologyID string `json:"technology_id"`
	Assigned     bool   `json:"assigned"`
}

type EmployeeOptionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}
