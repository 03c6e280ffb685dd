package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-workforce/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, employee *Employee) error
	FindAll(ctx context.Context, query EmployeeQuery) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id string) error
	FindRoleByName(ctx context.Context, name string) (*EmployeeRole, error)
	TechnologyExists(ctx context.Context, technologyID string) (bool, error)
	HasTechnology(ctx context.Context, employeeID, technologyID string) (bool, error)
	AddTechnology(ctx context.Context, employeeID, technologyID string) error
	RemoveTechnology(ctx context.Context, employeeID, technologyID string) error
	FindTechnologies(ctx context.Context, employeeID string) ([]EmployeeTechnologyView, error)
	FindProjects(ctx context.Context, employeeID string) ([]EmployeeProject, error)
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

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Create(employee).Error
}

func (r *repository) FindAll(ctx context.Context, query EmployeeQuery) ([]Employee, error) {
	var employees []Employee
	q := r.conn(ctx).Model(&Employee{}).Preload("Role")
	if surname := strings.TrimSpace(query.Surname); surname != "" {
		q = q.Where("LOWER(surname) = ?", strings.ToLower(surname))
	}
	if query.StartDate != nil {
		q = q.Where("hiring_date >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		q = q.Where("hiring_date <= ?", *query.EndDate)
	}
	err := q.Order("surname ASC").Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	err := r.conn(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) Update(ctx context.Context, employee *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Save(employee).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Where("id = ?", id).Delete(&Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindRoleByName(ctx context.Context, name string) (*EmployeeRole, error) {
	var role EmployeeRole
	err := r.conn(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) TechnologyExists(ctx context.Context, technologyID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("technologies").
		Where("id = ?", technologyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasTechnology(ctx context.Context, employeeID, technologyID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&EmployeeTechnology{}).
		Where("employee_id = ? AND technology_id = ?", employeeID, technologyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AddTechnology(ctx context.Context, employeeID, technologyID string) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}
	tid, err := uuid.Parse(technologyID)
	if err != nil {
		return err
	}
	return r.conn(ctx).Create(&EmployeeTechnology{EmployeeID: eid, TechnologyID: tid}).Error
}

func (r *repository) RemoveTechnology(ctx context.Context, employeeID, technologyID string) error {
	return r.conn(ctx).
		Where("employee_id = ? AND technology_id = ?", employeeID, technologyID).
		Delete(&EmployeeTechnology{}).Error
}

func (r *repository) FindTechnologies(ctx context.Context, employeeID string) ([]EmployeeTechnologyView, error) {
	var technologies []EmployeeTechnologyView
	err := r.conn(ctx).
		Model(&EmployeeTechnologyView{}).
		Select("technologies.id, technologies.name").
		Joins("JOIN employee_technologies et ON et.technology_id = technologies.id").
		Where("et.employee_id = ?", employeeID).
		Order("technologies.name ASC").
		Find(&technologies).Error
	return technologies, err
}

func (r *repository) FindProjects(ctx context.Context, employeeID string) ([]EmployeeProject, error) {
	var projects []EmployeeProject
	err := r.conn(ctx).
		Model(&EmployeeProject{}).
		Select("projects.id, projects.name, projects.description, projects.start_date, projects.end_date").
		Joins("JOIN project_employees pe ON pe.project_id = projects.id").
		Where("pe.employee_id = ?", employeeID).
		Order("projects.name ASC").
		Find(&projects).Error
	return projects, err
}
