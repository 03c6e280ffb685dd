package project

import (
	"context"
	"database/sql"
	"strings"

	"go-workforce/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, project *Project) error
	FindAll(ctx context.Context, query ProjectQuery) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasEmployee(ctx context.Context, projectID, employeeID string) (bool, error)
	AddEmployee(ctx context.Context, projectID, employeeID string) error
	RemoveEmployee(ctx context.Context, projectID, employeeID string) error
	FindEmployees(ctx context.Context, projectID string) ([]ProjectMember, error)
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

func (r *repository) Create(ctx context.Context, project *Project) error {
	return r.conn(ctx).Create(project).Error
}

func (r *repository) FindAll(ctx context.Context, query ProjectQuery) ([]Project, error) {
	var projects []Project
	q := r.conn(ctx).Model(&Project{})
	if name := strings.TrimSpace(query.Name); name != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, database.ContainsPattern(name))
	}
	if query.StartDate != nil {
		q = q.Where("start_date >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		q = q.Where("end_date <= ?", *query.EndDate)
	}
	err := q.Order("start_date ASC NULLS LAST").Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := r.conn(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *repository) Update(ctx context.Context, project *Project) error {
	return r.conn(ctx).Save(project).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Where("id = ?", id).Delete(&Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&ProjectMember{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasEmployee(ctx context.Context, projectID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&ProjectEmployee{}).
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AddEmployee(ctx context.Context, projectID, employeeID string) error {
	pid, err := uuid.Parse(projectID)
	if err != nil {
		return err
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}
	return r.conn(ctx).Create(&ProjectEmployee{ProjectID: pid, EmployeeID: eid}).Error
}

func (r *repository) RemoveEmployee(ctx context.Context, projectID, employeeID string) error {
	return r.conn(ctx).
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Delete(&ProjectEmployee{}).Error
}

func (r *repository) FindEmployees(ctx context.Context, projectID string) ([]ProjectMember, error) {
	var members []ProjectMember
	err := r.conn(ctx).
		Model(&ProjectMember{}).
		Select("employees.id, employees.name, employees.surname, employees.experience_level").
		Joins("JOIN project_employees pe ON pe.employee_id = employees.id").
		Where("pe.project_id = ?", projectID).
		Order("employees.surname ASC").
		Find(&members).Error
	return members, err
}
