package project

import (
	"context"
	"database/sql"
	"strings"
	"time"

	projecterrors "go-workforce/internal/project/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/dateutil"
	"go-workforce/internal/shared/patch"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, filter ProjectFilter) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	GetEmployees(ctx context.Context, id string) ([]ProjectMemberResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	AddEmployee(ctx context.Context, projectID, employeeID string) error
	RemoveEmployee(ctx context.Context, projectID, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)
	if err := req.Validate(); err != nil {
		s.logger.Warn("create project validation failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	startDate, err := dateutil.ParseOptionalField("start date", req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	endDate, err := dateutil.ParseOptionalField("end date", req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create project begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	project := &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := s.repo.WithTx(tx).Create(ctx, project); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create project commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.String("project_id", project.ID.String()),
	)
	return mapToResponse(*project), nil
}

func (s *service) GetAll(ctx context.Context, filter ProjectFilter) ([]ProjectResponse, error) {
	s.logger.Debug("get all projects requested",
		zap.String("name", filter.Name),
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

	projects, err := s.repo.FindAll(ctx, ProjectQuery{
		Name:      filter.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(projects) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	s.logger.Debug("get project by id requested", zap.String("project_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get project by id failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*project), nil
}

func (s *service) GetEmployees(ctx context.Context, id string) ([]ProjectMemberResponse, error) {
	s.logger.Debug("get project employees requested", zap.String("project_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	members, err := s.repo.FindEmployees(ctx, id)
	if err != nil {
		s.logger.Error("get project employees failed", zap.String("project_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(members) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]ProjectMemberResponse, len(members))
	for i, m := range members {
		res[i] = ProjectMemberResponse{
			ID:              m.ID.String(),
			Name:            m.Name,
			Surname:         m.Surname,
			ExperienceLevel: m.ExperienceLevel,
		}
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update project requested",
		zap.String("request_id", rid),
		zap.String("project_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}
	if req.IsAllEmpty() {
		return ProjectResponse{}, apperror.ErrNotModified
	}
	if err := req.Validate(); err != nil {
		return ProjectResponse{}, err
	}

	startDate, err := dateutil.ParseOptionalField("start date", req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	endDate, err := dateutil.ParseOptionalField("end date", req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update project begin tx failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	project, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update project fetch existing failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	changed := patch.String(&project.Name, req.Name)
	changed = patch.String(&project.Description, req.Description) || changed
	changed = patch.Date(&project.StartDate, startDate) || changed
	changed = patch.Date(&project.EndDate, endDate) || changed

	if changed {
		if err := qtx.Update(ctx, project); err != nil {
			s.logger.Error("update project persist failed", zap.Error(err))
			return ProjectResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update project commit failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("update project success", zap.String("project_id", id), zap.Bool("changed", changed))
	return mapToResponse(*project), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete project requested", zap.String("project_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Warn("delete project failed", zap.String("project_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete project commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete project success", zap.String("project_id", id))
	return nil
}

func (s *service) AddEmployee(ctx context.Context, projectID, employeeID string) error {
	s.logger.Debug("add project employee requested",
		zap.String("project_id", projectID),
		zap.String("employee_id", employeeID),
	)
	return s.mutateStaffing(ctx, projectID, employeeID, true)
}

func (s *service) RemoveEmployee(ctx context.Context, projectID, employeeID string) error {
	s.logger.Debug("remove project employee requested",
		zap.String("project_id", projectID),
		zap.String("employee_id", employeeID),
	)
	return s.mutateStaffing(ctx, projectID, employeeID, false)
}

// mutateStaffing attaches or detaches one employee. Both ids must resolve
// and the link must be absent (attach) or present (detach).
func (s *service) mutateStaffing(ctx context.Context, projectID, employeeID string, attach bool) error {
	if _, err := uuid.Parse(projectID); err != nil {
		return projecterrors.ErrInvalidProjectID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return projecterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, projectID); err != nil {
		return mapRepositoryError(err)
	}
	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return projecterrors.ErrEmployeeNotFound
	}

	staffed, err := qtx.HasEmployee(ctx, projectID, employeeID)
	if err != nil {
		return err
	}

	switch {
	case attach && staffed:
		return projecterrors.ErrEmployeeAlreadyAssigned
	case !attach && !staffed:
		return projecterrors.ErrEmployeeNotAssigned
	case attach:
		err = qtx.AddEmployee(ctx, projectID, employeeID)
	default:
		err = qtx.RemoveEmployee(ctx, projectID, employeeID)
	}
	if err != nil {
		s.logger.Error("project staffing change failed",
			zap.String("project_id", projectID),
			zap.String("employee_id", employeeID),
			zap.Bool("attach", attach),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("project staffing changed",
		zap.String("project_id", projectID),
		zap.String("employee_id", employeeID),
		zap.Bool("attach", attach),
	)
	return nil
}

func mapToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		StartDate:   dateutil.FormatPtr(p.StartDate),
		EndDate:     dateutil.FormatPtr(p.EndDate),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
