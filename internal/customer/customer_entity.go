package customer

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"size:100;not null"`
	Surname    string     `gorm:"size:100;not null"`
	Email      string     `gorm:"size:255"`
	Phone      string     `gorm:"size:50"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}
