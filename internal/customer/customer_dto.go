package customer

import (
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/patch"
)

type CreateCustomerRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Surname    string  `json:"surname" binding:"required,max=100"`
	Email      string  `json:"email" binding:"omitempty,email"`
	Phone      string  `json:"phone" binding:"omitempty,max=50"`
	EmployeeID *string `json:"employee_id"`
}

func (r CreateCustomerRequest) Validate() error {
	var errs apperror.FieldErrors
	errs.Required("name", r.Name)
	errs.MaxLen("name", r.Name, 100)
	errs.Required("surname", r.Surname)
	errs.MaxLen("surname", r.Surname, 100)
	errs.MaxLen("phone", r.Phone, 50)
	return errs.Err()
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Surname    *string `json:"surname" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	EmployeeID *string `json:"employee_id"`
}

func (r UpdateCustomerRequest) IsAllEmpty() bool {
	return patch.AllBlank(r.Name, r.Surname, r.Email, r.Phone, r.EmployeeID)
}

type CustomerFilter struct {
	EmployeeID string
}

type CustomerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	EmployeeID *string `json:"employee_id"`
}
