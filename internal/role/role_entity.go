package role

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	MinSalary float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// RoleEmployee is a read-only projection of an employee holding a role.
type RoleEmployee struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"column:name"`
	Surname string    `gorm:"column:surname"`
	Salary  float64   `gorm:"column:salary"`
	RoleID  uuid.UUID `gorm:"column:role_id"`
}

func (RoleEmployee) TableName() string {
	return "employees"
}
