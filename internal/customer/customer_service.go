package customer

import (
	"context"
	"database/sql"
	"strings"

	customererrors "go-workforce/internal/customer/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/patch"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customer_service.go -destination=mock/customer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetAll(ctx context.Context, filter CustomerFilter) ([]CustomerResponse, error)
	GetByID(ctx context.Context, id string) (CustomerResponse, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("customer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := req.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CustomerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cust := &Customer{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Surname: strings.TrimSpace(req.Surname),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
	}
	if patch.Present(req.EmployeeID) {
		owner, err := s.resolveEmployee(ctx, qtx, *req.EmployeeID)
		if err != nil {
			return CustomerResponse{}, err
		}
		cust.EmployeeID = &owner
	}

	if err := qtx.Create(ctx, cust); err != nil {
		s.logger.Error("create customer persist failed", zap.String("request_id", rid), zap.Error(err))
		return CustomerResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CustomerResponse{}, err
	}

	s.logger.Info("create customer success",
		zap.String("request_id", rid),
		zap.String("customer_id", cust.ID.String()),
	)
	return mapToResponse(*cust), nil
}

func (s *service) GetAll(ctx context.Context, filter CustomerFilter) ([]CustomerResponse, error) {
	filter.EmployeeID = strings.TrimSpace(filter.EmployeeID)
	if filter.EmployeeID != "" {
		if _, err := s.resolveEmployee(ctx, s.repo, filter.EmployeeID); err != nil {
			return nil, err
		}
	}

	customers, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all customers failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if len(customers) == 0 {
		return nil, apperror.ErrNoContent
	}

	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CustomerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CustomerResponse{}, customererrors.ErrInvalidCustomerID
	}

	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cust), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CustomerResponse{}, customererrors.ErrInvalidCustomerID
	}
	if req.IsAllEmpty() {
		return CustomerResponse{}, apperror.ErrNotModified
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CustomerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cust, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}

	changed := patch.String(&cust.Name, req.Name)
	changed = patch.String(&cust.Surname, req.Surname) || changed
	changed = patch.String(&cust.Email, req.Email) || changed
	changed = patch.String(&cust.Phone, req.Phone) || changed
	if patch.Present(req.EmployeeID) {
		owner, err := s.resolveEmployee(ctx, qtx, *req.EmployeeID)
		if err != nil {
			return CustomerResponse{}, err
		}
		if cust.EmployeeID == nil || *cust.EmployeeID != owner {
			cust.EmployeeID = &owner
			changed = true
		}
	}

	if changed {
		if err := qtx.Update(ctx, cust); err != nil {
			s.logger.Error("update customer persist failed", zap.String("customer_id", id), zap.Error(err))
			return CustomerResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return CustomerResponse{}, err
	}

	return mapToResponse(*cust), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return customererrors.ErrInvalidCustomerID
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

	s.logger.Info("delete customer success", zap.String("customer_id", id))
	return nil
}

func (s *service) resolveEmployee(ctx context.Context, qtx Repository, raw string) (uuid.UUID, error) {
	employeeID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, customererrors.ErrInvalidEmployeeID
	}
	exists, err := qtx.EmployeeExists(ctx, employeeID.String())
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, customererrors.ErrEmployeeNotFound
	}
	return employeeID, nil
}

func mapToResponse(c Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Surname: c.Surname,
		Email:   c.Email,
		Phone:   c.Phone,
	}
	if c.EmployeeID != nil {
		v := c.EmployeeID.String()
		resp.EmployeeID = &v
	}
	return resp
}
