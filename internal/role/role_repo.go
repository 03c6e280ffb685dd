package role

import (
	"context"
	"database/sql"
	"strings"

	"go-workforce/internal/shared/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, role *Role) error
	FindAll(ctx context.Context, filter RoleFilter) ([]Role, error)
	FindByID(ctx context.Context, id string) (*Role, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, roleID string) (int64, error)
	CountEmployeesBelowSalary(ctx context.Context, roleID string, minSalary float64) (int64, error)
	FindEmployees(ctx context.Context, roleID string) ([]RoleEmployee, error)
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

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.conn(ctx).Create(role).Error
}

func (r *repository) FindAll(ctx context.Context, filter RoleFilter) ([]Role, error) {
	var roles []Role
	q := r.conn(ctx).Model(&Role{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, database.ContainsPattern(name))
	}
	if filter.MinSalary != nil {
		q = q.Where("min_salary >= ?", *filter.MinSalary)
	}
	err := q.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Role, error) {
	var role Role
	if err := r.conn(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ExistsByName compares names case-insensitively, ignoring excludeID when set.
func (r *repository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(&Role{}).Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.conn(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Role{}, "id = ?", id).Error
}

func (r *repository) CountEmployees(ctx context.Context, roleID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&RoleEmployee{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountEmployeesBelowSalary(ctx context.Context, roleID string, minSalary float64) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&RoleEmployee{}).
		Where("role_id = ?", roleID).
		Where("salary < ?", minSalary).
		Count(&count).Error
	return count, err
}

func (r *repository) FindEmployees(ctx context.Context, roleID string) ([]RoleEmployee, error) {
	var employees []RoleEmployee
	err := r.conn(ctx).
		Where("role_id = ?", roleID).
		Order("surname ASC, name ASC").
		Find(&employees).Error
	return employees, err
}
