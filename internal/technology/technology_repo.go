package technology

import (
	"context"
	"database/sql"

	"go-workforce/internal/shared/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=technology_repo.go -destination=mock/technology_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, technology *Technology) error
	FindAll(ctx context.Context) ([]Technology, error)
	FindByID(ctx context.Context, id string) (*Technology, error)
	Delete(ctx context.Context, id string) error
	FindEmployees(ctx context.Context, technologyID string) ([]TechnologyEmployee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, technology *Technology) error {
	return r.conn(ctx).Create(technology).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Technology, error) {
	var technologies []Technology
	err := r.conn(ctx).Order("name ASC").Find(&technologies).Error
	return technologies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Technology, error) {
	var technology Technology
	if err := r.conn(ctx).Where("id = ?", id).First(&technology).Error; err != nil {
		return nil, err
	}
	return &technology, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Where("id = ?", id).Delete(&Technology{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindEmployees(ctx context.Context, technologyID string) ([]TechnologyEmployee, error) {
	var employees []TechnologyEmployee
	err := r.conn(ctx).
		Model(&TechnologyEmployee{}).
		Select("employees.id, employees.name, employees.surname").
		Joins("JOIN employee_technologies et ON et.employee_id = employees.id").
		Where("et.technology_id = ?", technologyID).
		Order("employees.surname ASC").
		Find(&employees).Error
	return employees, err
}
