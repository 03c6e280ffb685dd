package technology

import (
	"time"

	"github.com/google/uuid"
)

type Technology struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uq_technologies_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type TechnologyEmployee struct {
	ID      uuid.UUID
	Name    string
	Surname string
}

func (TechnologyEmployee) TableName() string {
	return "employees"
}
