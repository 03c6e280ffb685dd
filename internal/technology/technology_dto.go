package technology

import "go-workforce/internal/shared/apperror"

type CreateTechnologyRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (r CreateTechnologyRequest) Validate() error {
	var errs apperror.FieldErrors
	errs.Required("name", r.Name)
	errs.MaxLen("name", r.Name, 100)
	return errs.Err()
}

type TechnologyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TechnologyEmployeeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}
