package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:150;not null;index"`
	Description string     `gorm:"type:text"`
	StartDate   *time.Time `gorm:"type:date;index:idx_projects_dates"`
	EndDate     *time.Time `gorm:"type:date;index:idx_projects_dates"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

// ProjectEmployee staffs an employee on a project.
type ProjectEmployee struct {
	ProjectID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ProjectEmployee) TableName() string {
	return "project_employees"
}

type ProjectMember struct {
	ID              uuid.UUID
	Name            string
	Surname         string
	ExperienceLevel int
}

func (ProjectMember) TableName() string {
	return "employees"
}
