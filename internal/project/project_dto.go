package project

import (
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/patch"
)

const nameMaxLen = 150

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r CreateProjectRequest) Validate() error {
	var errs apperror.FieldErrors
	errs.Required("name", r.Name)
	errs.MaxLen("name", r.Name, nameMaxLen)
	return errs.Err()
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r UpdateProjectRequest) IsAllEmpty() bool {
	return patch.AllBlank(r.Name, r.Description, r.StartDate, r.EndDate)
}

func (r UpdateProjectRequest) Validate() error {
	var errs apperror.FieldErrors
	if r.Name != nil {
		errs.MaxLen("name", *r.Name, nameMaxLen)
	}
	return errs.Err()
}

// ProjectFilter holds raw query parameters.
type ProjectFilter struct {
	Name      string
	StartDate string
	EndDate   string
}

type ProjectQuery struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type ProjectMemberResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	ExperienceLevel int    `json:"experience_level"`
}

type StaffingResponse struct {
	ProjectID  string `json:"project_id"`
	EmployeeID string `json:"employee_id"`
	Assigned   bool   `json:"assigned"`
}
