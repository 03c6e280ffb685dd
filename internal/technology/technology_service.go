package technology

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-workforce/internal/shared/apperror"
	technologyerrors "go-workforce/internal/technology/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const TechnologyListCacheKey = "technologies:all"

const technologyListCacheTTL = time.Hour

//go:generate mockgen -source=technology_service.go -destination=mock/technology_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTechnologyRequest) (TechnologyResponse, error)
	GetAll(ctx context.Context) ([]TechnologyResponse, error)
	GetByID(ctx context.Context, id string) (TechnologyResponse, error)
	GetEmployees(ctx context.Context, id string) ([]TechnologyEmployeeResponse, error)
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
	l := zap.L().Named("technology.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("technology.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTechnologyRequest) (TechnologyResponse, error) {
	if err := req.Validate(); err != nil {
		return TechnologyResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TechnologyResponse{}, err
	}
	defer tx.Rollback()

	tech := &Technology{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
	}

	if err := s.repo.WithTx(tx).Create(ctx, tech); err != nil {
		return TechnologyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TechnologyResponse{}, err
	}

	s.invalidateListCache(ctx)
	return mapToResponse(*tech), nil
}

func (s *service) GetAll(ctx context.Context) ([]TechnologyResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TechnologyListCacheKey).Result(); err == nil {
			var resp []TechnologyResponse
			if json.Unmarshal([]byte(cached), &resp) == nil && len(resp) > 0 {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TechnologyListCacheKey, func() (interface{}, error) {
		techs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]TechnologyResponse, len(techs))
		for i, t := range techs {
			resp[i] = mapToResponse(t)
		}

		if s.rdb != nil && len(resp) > 0 {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TechnologyListCacheKey, data, technologyListCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all technologies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := v.([]TechnologyResponse)
	if len(resp) == 0 {
		return nil, apperror.ErrNoContent
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TechnologyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TechnologyResponse{}, technologyerrors.ErrInvalidTechnologyID
	}

	tech, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TechnologyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*tech), nil
}

func (s *service) GetEmployees(ctx context.Context, id string) ([]TechnologyEmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, technologyerrors.ErrInvalidTechnologyID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	employees, err := s.repo.FindEmployees(ctx, id)
	if err != nil {
		s.logger.Error("get technology employees failed", zap.String("technology_id", id), zap.Error(err))
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]TechnologyEmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = TechnologyEmployeeResponse{
			ID:      e.ID.String(),
			Name:    e.Name,
			Surname: e.Surname,
		}
	}
	return res, nil
}

// Delete also drops the technology from every employee through the link table cascade.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return technologyerrors.ErrInvalidTechnologyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete technology success", zap.String("technology_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TechnologyListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate technology list cache",
			zap.Error(err),
			zap.String("key", TechnologyListCacheKey),
		)
	}
}

func mapToResponse(t Technology) TechnologyResponse {
	return TechnologyResponse{
		ID:   t.ID.String(),
		Name: t.Name,
	}
}
