package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name            string        `gorm:"size:100;not null"`
	Surname         string        `gorm:"size:100;not null;index"`
	HiringDate      time.Time     `gorm:"type:date;not null;index"`
	ExperienceLevel int           `gorm:"not null;default:0"`
	Salary          float64       `gorm:"type:numeric(12,2);not null;default:0"`
	RoleID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	Role            *EmployeeRole `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime"`
}

// EmployeeRole is the slice of a role an employee needs: its name and salary floor.
type EmployeeRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	MinSalary float64
}

func (EmployeeRole) TableName() string {
	return "roles"
}

// EmployeeTechnology is one row of the employee/technology relation.
type EmployeeTechnology struct {
	EmployeeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TechnologyID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (EmployeeTechnology) TableName() string {
	return "employee_technologies"
}

type EmployeeTechnologyView struct {
	ID   uuid.UUID
	Name string
}

func (EmployeeTechnologyView) TableName() string {
	return "technologies"
}

type EmployeeProject struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (EmployeeProject) TableName() string {
	return "projects"
}
