package role

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	roleerrors "go-workforce/internal/role/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/patch"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const RoleListCacheKey = "roles:all"

const roleListCacheTTL = 30 * time.Minute

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context, filter RoleFilter) ([]RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	GetEmployees(ctx context.Context, id string) ([]RoleEmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	name := strings.TrimSpace(req.Name)
	s.logger.Debug("create role requested",
		zap.String("request_id", rid),
		zap.String("name", name),
	)
	if err := req.Validate(); err != nil {
		s.logger.Warn("create role validation failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create role begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByName(ctx, name, "")
	if err != nil {
		s.logger.Error("create role name check failed", zap.Error(err))
		return RoleResponse{}, err
	}
	if exists {
		s.logger.Warn("create role duplicate name", zap.String("name", name))
		return RoleResponse{}, roleerrors.ErrRoleAlreadyExists
	}

	role := &Role{
		ID:   uuid.New(),
		Name: name,
	}
	if req.MinSalary != nil {
		role.MinSalary = *req.MinSalary
	}

	if err := qtx.Create(ctx, role); err != nil {
		s.logger.Error("create role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create role commit failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create role success",
		zap.String("request_id", rid),
		zap.String("role_id", role.ID.String()),
	)

	return mapToResponse(*role), nil
}

// GetAll serves the unfiltered list from cache. Filtered queries always hit the database.
func (s *service) GetAll(ctx context.Context, filter RoleFilter) ([]RoleResponse, error) {
	s.logger.Debug("get all roles requested",
		zap.String("name", filter.Name),
		zap.Bool("filtered", !filter.IsEmpty()),
	)

	var (
		resp []RoleResponse
		err  error
	)
	if filter.IsEmpty() {
		resp, err = s.cachedList(ctx)
	} else {
		var roles []Role
		roles, err = s.repo.FindAll(ctx, filter)
		if err == nil {
			resp = mapToListResponse(roles)
		}
	}
	if err != nil {
		s.logger.Error("get all roles failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if len(resp) == 0 {
		return nil, apperror.ErrNoContent
	}
	return resp, nil
}

func (s *service) cachedList(ctx context.Context) ([]RoleResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RoleListCacheKey).Result(); err == nil {
			var resp []RoleResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RoleListCacheKey, func() (interface{}, error) {
		roles, err := s.repo.FindAll(ctx, RoleFilter{})
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(roles)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RoleListCacheKey, data, roleListCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]RoleResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	s.logger.Debug("get role by id requested", zap.String("role_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidRoleID
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get role by id failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*role), nil
}

func (s *service) GetEmployees(ctx context.Context, id string) ([]RoleEmployeeResponse, error) {
	s.logger.Debug("get role employees requested", zap.String("role_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return nil, roleerrors.ErrInvalidRoleID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	employees, err := s.repo.FindEmployees(ctx, id)
	if err != nil {
		s.logger.Error("get role employees failed", zap.String("role_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(employees) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]RoleEmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = RoleEmployeeResponse{
			ID:      e.ID.String(),
			Name:    e.Name,
			Surname: e.Surname,
			Salary:  e.Salary,
		}
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update role requested",
		zap.String("request_id", rid),
		zap.String("role_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidRoleID
	}
	if req.IsAllEmpty() {
		return RoleResponse{}, apperror.ErrNotModified
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update role fetch existing failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	if patch.Present(req.Name) && !strings.EqualFold(strings.TrimSpace(*req.Name), role.Name) {
		exists, err := qtx.ExistsByName(ctx, *req.Name, id)
		if err != nil {
			return RoleResponse{}, err
		}
		if exists {
			return RoleResponse{}, roleerrors.ErrRoleAlreadyExists
		}
	}

	// Raising the floor must not strand current holders below it.
	if req.MinSalary != nil && *req.MinSalary > role.MinSalary {
		below, err := qtx.CountEmployeesBelowSalary(ctx, id, *req.MinSalary)
		if err != nil {
			return RoleResponse{}, err
		}
		if below > 0 {
			s.logger.Warn("update role min salary above holders",
				zap.String("role_id", id),
				zap.Int64("employees_below", below),
			)
			return RoleResponse{}, roleerrors.ErrMinSalaryAboveHolders
		}
	}

	changed := patch.String(&role.Name, req.Name)
	changed = patch.Float64(&role.MinSalary, req.MinSalary) || changed

	if changed {
		if err := qtx.Update(ctx, role); err != nil {
			s.logger.Error("update role persist failed", zap.Error(err))
			return RoleResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update role commit failed", zap.Error(err))
		return RoleResponse{}, err
	}

	if changed {
		s.invalidateListCache(ctx)
	}
	s.logger.Info("update role success", zap.String("role_id", id), zap.Bool("changed", changed))

	return mapToResponse(*role), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete role requested", zap.String("role_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return roleerrors.ErrInvalidRoleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete role begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	holders, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if holders > 0 {
		return roleerrors.ErrRoleInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete role failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete role commit failed", zap.Error(err))
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete role success", zap.String("role_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RoleListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate role list cache",
			zap.Error(err),
			zap.String("key", RoleListCacheKey),
		)
	}
}

func mapToResponse(role Role) RoleResponse {
	resp := RoleResponse{
		ID:        role.ID.String(),
		Name:      role.Name,
		MinSalary: role.MinSalary,
	}
	if !role.CreatedAt.IsZero() {
		resp.CreatedAt = role.CreatedAt.Format(time.RFC3339)
	}
	if !role.UpdatedAt.IsZero() {
		resp.UpdatedAt = role.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}
