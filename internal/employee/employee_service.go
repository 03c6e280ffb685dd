package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/dateutil"
	"go-workforce/internal/shared/patch"
	"go-workforce/internal/shared/salarypolicy"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const employeeOptionsTTL = time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetTechnologies(ctx context.Context, id string) ([]EmployeeTechnologyResponse, error)
	GetProjects(ctx context.Context, id string) ([]EmployeeProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	AddTechnology(ctx context.Context, employeeID, technologyID string) error
	RemoveTechnology(ctx context.Context, employeeID, technologyID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("surname", req.Surname),
		zap.String("role_name", req.RoleName),
	)
	if err := req.Validate(); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	hiringDate, err := dateutil.ParseField("hiring date", strings.TrimSpace(req.HiringDate))
	if err != nil {
		s.logger.Warn("create employee invalid hiring_date",
			zap.String("hiring_date", req.HiringDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindRoleByName(ctx, req.RoleName)
	if err != nil {
		s.logger.Warn("create employee role lookup failed",
			zap.String("role_name", req.RoleName),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRoleLookupError(err)
	}

	salary, err := salarypolicy.Resolve(req.Salary, role.MinSalary)
	if err != nil {
		s.logger.Warn("create employee salary below role minimum",
			zap.String("role_id", role.ID.String()),
			zap.Float64("min_salary", role.MinSalary),
		)
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Surname:    strings.TrimSpace(req.Surname),
		HiringDate: hiringDate,
		Salary:     salary,
		RoleID:     role.ID,
	}
	if req.ExperienceLevel != nil {
		empl.ExperienceLevel = *req.ExperienceLevel
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	empl.Role = role

	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("surname", filter.Surname),
		zap.String("start_date", filter.StartDate),
		zap.String("end_date", filter.EndDate),
	)

	start, err := dateutil.ParseOptionalField("start date", &filter.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseOptionalField("end date", &filter.EndDate)
	if err != nil {
		return nil, err
	}
	if err := dateutil.ValidateRange(start, end); err != nil {
		return nil, err
	}

	employees, err := s.repo.FindAll(ctx, EmployeeQuery{
		Surname:   filter.Surname,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(employees) == 0 {
		return nil, apperror.ErrNoContent
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx, EmployeeQuery{})
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{
				ID:      e.ID.String(),
				Name:    e.Name,
				Surname: e.Surname,
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, data, employeeOptionsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	resp := v.([]EmployeeOptionResponse)
	if len(resp) == 0 {
		return nil, apperror.ErrNoContent
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetTechnologies(ctx context.Context, id string) ([]EmployeeTechnologyResponse, error) {
	s.logger.Debug("get employee technologies requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	technologies, err := s.repo.FindTechnologies(ctx, id)
	if err != nil {
		s.logger.Error("get employee technologies failed", zap.String("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(technologies) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]EmployeeTechnologyResponse, len(technologies))
	for i, t := range technologies {
		res[i] = EmployeeTechnologyResponse{ID: t.ID.String(), Name: t.Name}
	}
	return res, nil
}

func (s *service) GetProjects(ctx context.Context, id string) ([]EmployeeProjectResponse, error) {
	s.logger.Debug("get employee projects requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	projects, err := s.repo.FindProjects(ctx, id)
	if err != nil {
		s.logger.Error("get employee projects failed", zap.String("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(projects) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]EmployeeProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = EmployeeProjectResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
		}
		if p.StartDate != nil {
			res[i].StartDate = dateutil.Format(*p.StartDate)
		}
		if p.EndDate != nil {
			res[i].EndDate = dateutil.Format(*p.EndDate)
		}
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.IsAllEmpty() {
		return EmployeeResponse{}, apperror.ErrNotModified
	}
	if err := req.Validate(); err != nil {
		return EmployeeResponse{}, err
	}

	hiringDate, err := dateutil.ParseOptionalField("hiring date", req.HiringDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	targetRole := empl.Role
	roleChanged := false
	if patch.Present(req.RoleName) {
		role, err := qtx.FindRoleByName(ctx, *req.RoleName)
		if err != nil {
			s.logger.Warn("update employee role lookup failed",
				zap.String("role_name", *req.RoleName),
				zap.Error(err),
			)
			return EmployeeResponse{}, mapRoleLookupError(err)
		}
		if role.ID != empl.RoleID {
			targetRole = role
			roleChanged = true
		}
	}

	// Without a new salary, a role change re-checks the stored one.
	if req.Salary != nil || roleChanged {
		candidate := req.Salary
		if candidate == nil {
			current := empl.Salary
			candidate = &current
		}
		var minSalary float64
		if targetRole != nil {
			minSalary = targetRole.MinSalary
		}
		if _, err := salarypolicy.Resolve(candidate, minSalary); err != nil {
			s.logger.Warn("update employee salary below role minimum",
				zap.String("employee_id", id),
				zap.Float64("min_salary", minSalary),
			)
			return EmployeeResponse{}, err
		}
	}

	changed := patch.String(&empl.Name, req.Name)
	changed = patch.String(&empl.Surname, req.Surname) || changed
	changed = patch.Float64(&empl.Salary, req.Salary) || changed
	changed = patch.Int(&empl.ExperienceLevel, req.ExperienceLevel) || changed
	if hiringDate != nil && !hiringDate.Equal(empl.HiringDate) {
		empl.HiringDate = *hiringDate
		changed = true
	}
	if roleChanged {
		empl.RoleID = targetRole.ID
		empl.Role = targetRole
		changed = true
	}

	if changed {
		if err := qtx.Update(ctx, empl); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
		if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeUpdated, empl); err != nil {
			s.logger.Error("update employee outbox persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if changed {
		s.invalidateOptionsCache(ctx)
	}
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("changed", changed),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeDeleted, empl); err != nil {
		s.logger.Error("delete employee outbox persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) AddTechnology(ctx context.Context, employeeID, technologyID string) error {
	s.logger.Debug("add employee technology requested",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)
	if err := validateLinkIDs(employeeID, technologyID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureLinkTargets(ctx, qtx, employeeID, technologyID); err != nil {
		return err
	}

	linked, err := qtx.HasTechnology(ctx, employeeID, technologyID)
	if err != nil {
		return err
	}
	if linked {
		return employeeerrors.ErrTechnologyAlreadyAssigned
	}

	if err := qtx.AddTechnology(ctx, employeeID, technologyID); err != nil {
		s.logger.Error("add employee technology failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("add employee technology success",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)
	return nil
}

func (s *service) RemoveTechnology(ctx context.Context, employeeID, technologyID string) error {
	s.logger.Debug("remove employee technology requested",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)
	if err := validateLinkIDs(employeeID, technologyID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureLinkTargets(ctx, qtx, employeeID, technologyID); err != nil {
		return err
	}

	linked, err := qtx.HasTechnology(ctx, employeeID, technologyID)
	if err != nil {
		return err
	}
	if !linked {
		return employeeerrors.ErrTechnologyNotAssigned
	}

	if err := qtx.RemoveTechnology(ctx, employeeID, technologyID); err != nil {
		s.logger.Error("remove employee technology failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("remove employee technology success",
		zap.String("employee_id", employeeID),
		zap.String("technology_id", technologyID),
	)
	return nil
}

func validateLinkIDs(employeeID, technologyID string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(technologyID); err != nil {
		return employeeerrors.ErrInvalidTechnologyID
	}
	return nil
}

func (s *service) ensureLinkTargets(ctx context.Context, qtx Repository, employeeID, technologyID string) error {
	if _, err := qtx.FindByID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}
	exists, err := qtx.TechnologyExists(ctx, technologyID)
	if err != nil {
		return err
	}
	if !exists {
		return employeeerrors.ErrTechnologyNotFound
	}
	return nil
}

// queueLifecycleEvent writes the event to the outbox inside tx. No-op without an outbox.
func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewOutboxEvent(
		"employee",
		empl.ID.String(),
		eventType,
		events.EmployeeLifecycleTopic,
		rid,
		events.EmployeeLifecycleEvent{
			EventType:  eventType,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			RoleID:     empl.RoleID.String(),
			OccurredAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, evt)
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID.String(),
		Name:            e.Name,
		Surname:         e.Surname,
		HiringDate:      dateutil.Format(e.HiringDate),
		ExperienceLevel: e.ExperienceLevel,
		Salary:          e.Salary,
		RoleID:          e.RoleID.String(),
	}
	if e.Role != nil {
		resp.Role = &EmployeeRoleResponse{
			ID:        e.Role.ID.String(),
			Name:      e.Role.Name,
			MinSalary: e.Role.MinSalary,
		}
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
