package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/employee"
	employeeerrors "go-workforce/internal/employee/errors"
	employeeMock "go-workforce/internal/employee/mock"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	outboxMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/salarypolicy"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	outbox    *outboxMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outbox := outboxMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outbox, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func expectOutbox(t *testing.T, deps *serviceDeps, eventType string) {
	t.Helper()
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
			assert.Equal(t, "employee", evt.AggregateType)
			assert.Equal(t, eventType, evt.EventType)
			assert.Equal(t, events.EmployeeLifecycleTopic, evt.Topic)

			var payload events.EmployeeLifecycleEvent
			assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
			assert.Equal(t, eventType, payload.EventType)
			assert.Equal(t, evt.AggregateID, payload.EmployeeID)
			return nil
		})
}

func ptr[T any](v T) *T {
	return &v
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	engineer := &employee.EmployeeRole{ID: uuid.New(), Name: "Engineer", MinSalary: 3000}

	t.Run("success - salary defaults to role minimum", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(ctx, "engineer").Return(engineer, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Ada", e.Name)
				assert.Equal(t, "Lovelace", e.Surname)
				assert.Equal(t, 3000.0, e.Salary)
				assert.Equal(t, engineer.ID, e.RoleID)
				assert.Equal(t, 0, e.ExperienceLevel)
				assert.True(t, date("2020-03-15").Equal(e.HiringDate))
				return nil
			})
		expectOutbox(t, deps, events.EmployeeCreated)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:       " Ada ",
			Surname:    "Lovelace",
			HiringDate: "2020-03-15",
			RoleName:   "engineer",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3000.0, resp.Salary)
		assert.Equal(t, "2020-03-15", resp.HiringDate)
		assert.Equal(t, "Engineer", resp.Role.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("success - european date and explicit salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(ctx, "Engineer").Return(engineer, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		expectOutbox(t, deps, events.EmployeeCreated)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:            "Ada",
			Surname:         "Lovelace",
			HiringDate:      "15-03-2020",
			RoleName:        "Engineer",
			Salary:          ptr(4500.0),
			ExperienceLevel: ptr(3),
		})

		assert.NoError(t, err)
		assert.Equal(t, 4500.0, resp.Salary)
		assert.Equal(t, 3, resp.ExperienceLevel)
		assert.Equal(t, "2020-03-15", resp.HiringDate)
	})

	t.Run("outbox event carries request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		rctx := contextutil.WithRequestID(ctx, "req-42")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(rctx, "Engineer").Return(engineer, nil)
		deps.repo.EXPECT().Create(rctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(rctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, "req-42", evt.RequestID)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		_, err := deps.service.Create(rctx, employee.CreateEmployeeRequest{
			Name: "Ada", Surname: "Lovelace", HiringDate: "2020-03-15", RoleName: "Engineer",
		})

		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada"})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "Surname is required", appErr.Message)
	})

	t.Run("invalid hiring date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name: "Ada", Surname: "Lovelace", HiringDate: "2020/03/15", RoleName: "Engineer",
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidDateFormat, appErr.Code)
		assert.Equal(t, "hiring date: invalid date format", appErr.Message)
	})

	t.Run("role not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(ctx, "Pilot").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name: "Ada", Surname: "Lovelace", HiringDate: "2020-03-15", RoleName: "Pilot",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotFound)
	})

	t.Run("salary below role minimum", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(ctx, "Engineer").Return(engineer, nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name: "Ada", Surname: "Lovelace", HiringDate: "2020-03-15", RoleName: "Engineer",
			Salary: ptr(2999.99),
		})

		assert.ErrorIs(t, err, salarypolicy.ErrSalaryBelowRoleMinimum)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindRoleByName(ctx, "Engineer").Return(engineer, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name: "Ada", Surname: "Lovelace", HiringDate: "2020-03-15", RoleName: "Engineer",
		})

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("parses both date layouts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAll(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, q employee.EmployeeQuery) ([]employee.Employee, error) {
				assert.Equal(t, "lovelace", q.Surname)
				assert.True(t, date("2020-01-01").Equal(*q.StartDate))
				assert.True(t, date("2020-12-31").Equal(*q.EndDate))
				return []employee.Employee{{ID: uuid.New(), Surname: "Lovelace", HiringDate: date("2020-03-15")}}, nil
			})

		resp, err := deps.service.GetAll(ctx, employee.EmployeeFilter{
			Surname:   "lovelace",
			StartDate: "2020-01-01",
			EndDate:   "31-12-2020",
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("open range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAll(ctx, employee.EmployeeQuery{}).
			Return([]employee.Employee{{ID: uuid.New()}}, nil)

		_, err := deps.service.GetAll(ctx, employee.EmployeeFilter{})

		assert.NoError(t, err)
	})

	t.Run("invalid start date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, employee.EmployeeFilter{StartDate: "yesterday"})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "start date: invalid date format", appErr.Message)
	})

	t.Run("start after end", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, employee.EmployeeFilter{StartDate: "2021-01-01", EndDate: "2020-01-01"})

		assert.ErrorIs(t, err, apperror.ErrInvalidDateRange)
	})

	t.Run("empty result", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, nil)

		_, err := deps.service.GetAll(ctx, employee.EmployeeFilter{Surname: "nobody"})

		assert.ErrorIs(t, err, apperror.ErrNoContent)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	options := []employee.EmployeeOptionResponse{{ID: id.String(), Name: "Ada", Surname: "Lovelace"}}
	data, _ := json.Marshal(options)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(data))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, options, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx, employee.EmployeeQuery{}).
			Return([]employee.Employee{{ID: id, Name: "Ada", Surname: "Lovelace"}}, nil)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, data, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, options, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		id := uuid.New()
		roleID := uuid.New()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{
			ID:         id,
			Name:       "Ada",
			HiringDate: date("2020-03-15"),
			RoleID:     roleID,
			Role:       &employee.EmployeeRole{ID: roleID, Name: "Engineer"},
		}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, roleID.String(), resp.RoleID)
		assert.Equal(t, "Engineer", resp.Role.Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "42")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		id := uuid.NewString()

		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Views(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("technologies", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		techID := uuid.New()

		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindTechnologies(ctx, id).Return([]employee.EmployeeTechnologyView{{ID: techID, Name: "Go"}}, nil)

		resp, err := deps.service.GetTechnologies(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, []employee.EmployeeTechnologyResponse{{ID: techID.String(), Name: "Go"}}, resp)
	})

	t.Run("no technologies", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindTechnologies(ctx, id).Return(nil, nil)

		_, err := deps.service.GetTechnologies(ctx, id)

		assert.ErrorIs(t, err, apperror.ErrNoContent)
	})

	t.Run("projects format dates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		start := date("2024-01-10")

		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().FindProjects(ctx, id).Return([]employee.EmployeeProject{
			{ID: uuid.New(), Name: "Apollo", StartDate: &start},
		}, nil)

		resp, err := deps.service.GetProjects(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-10", resp[0].StartDate)
		assert.Empty(t, resp[0].EndDate)
	})

	t.Run("projects of unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetProjects(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	engineer := &employee.EmployeeRole{ID: uuid.New(), Name: "Engineer", MinSalary: 3000}
	lead := &employee.EmployeeRole{ID: uuid.New(), Name: "Lead", MinSalary: 5000}

	existing := func() *employee.Employee {
		return &employee.Employee{
			ID:         id,
			Name:       "Ada",
			Surname:    "Lovelace",
			HiringDate: date("2020-03-15"),
			Salary:     4000,
			RoleID:     engineer.ID,
			Role:       engineer,
		}
	}

	t.Run("empty payload is not modified", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{Name: ptr("  ")})

		assert.ErrorIs(t, err, apperror.ErrNotModified)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Byron", e.Surname)
				assert.Equal(t, "Ada", e.Name)
				assert.Equal(t, 4000.0, e.Salary)
				assert.True(t, date("2021-06-01").Equal(e.HiringDate))
				return nil
			})
		expectOutbox(t, deps, events.EmployeeUpdated)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Name:       ptr(""),
			Surname:    ptr("Byron"),
			HiringDate: ptr("01-06-2021"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Byron", resp.Surname)
		assert.Equal(t, "2021-06-01", resp.HiringDate)
	})

	t.Run("same values skip persistence", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{Name: ptr("Ada")})

		assert.NoError(t, err)
		assert.Equal(t, "Ada", resp.Name)
	})

	t.Run("salary below current role minimum", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{Salary: ptr(100.0)})

		assert.ErrorIs(t, err, salarypolicy.ErrSalaryBelowRoleMinimum)
	})

	t.Run("role change re-checks stored salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().FindRoleByName(ctx, "lead").Return(lead, nil)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{RoleName: ptr("lead")})

		assert.ErrorIs(t, err, salarypolicy.ErrSalaryBelowRoleMinimum)
	})

	t.Run("role change with matching salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().FindRoleByName(ctx, "Lead").Return(lead, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, lead.ID, e.RoleID)
				assert.Equal(t, 5500.0, e.Salary)
				return nil
			})
		expectOutbox(t, deps, events.EmployeeUpdated)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			RoleName: ptr("Lead"),
			Salary:   ptr(5500.0),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Lead", resp.Role.Name)
	})

	t.Run("unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().FindRoleByName(ctx, "Pilot").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{RoleName: ptr("Pilot")})

		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotFound)
	})

	t.Run("invalid hiring date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{HiringDate: ptr("2021.06.01")})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "hiring date: invalid date format", appErr.Message)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{Surname: ptr("Byron")})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(nil)
		expectOutbox(t, deps, events.EmployeeDeleted)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().
			Delete(ctx, id.String()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_audit_employee"})

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInUse)
	})
}

func TestEmployeeService_Technologies(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	technologyID := uuid.NewString()

	t.Run("add success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(true, nil)
		deps.repo.EXPECT().HasTechnology(ctx, employeeID, technologyID).Return(false, nil)
		deps.repo.EXPECT().AddTechnology(ctx, employeeID, technologyID).Return(nil)

		err := deps.service.AddTechnology(ctx, employeeID, technologyID)

		assert.NoError(t, err)
	})

	t.Run("add duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(true, nil)
		deps.repo.EXPECT().HasTechnology(ctx, employeeID, technologyID).Return(true, nil)

		err := deps.service.AddTechnology(ctx, employeeID, technologyID)

		assert.ErrorIs(t, err, employeeerrors.ErrTechnologyAlreadyAssigned)
	})

	t.Run("add races with a concurrent insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(true, nil)
		deps.repo.EXPECT().HasTechnology(ctx, employeeID, technologyID).Return(false, nil)
		deps.repo.EXPECT().
			AddTechnology(ctx, employeeID, technologyID).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "employee_technologies_pkey"})

		err := deps.service.AddTechnology(ctx, employeeID, technologyID)

		assert.ErrorIs(t, err, employeeerrors.ErrTechnologyAlreadyAssigned)
	})

	t.Run("unknown technology", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(false, nil)

		err := deps.service.AddTechnology(ctx, employeeID, technologyID)

		assert.ErrorIs(t, err, employeeerrors.ErrTechnologyNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.RemoveTechnology(ctx, employeeID, technologyID)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("remove success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(true, nil)
		deps.repo.EXPECT().HasTechnology(ctx, employeeID, technologyID).Return(true, nil)
		deps.repo.EXPECT().RemoveTechnology(ctx, employeeID, technologyID).Return(nil)

		err := deps.service.RemoveTechnology(ctx, employeeID, technologyID)

		assert.NoError(t, err)
	})

	t.Run("remove absent link", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().TechnologyExists(ctx, technologyID).Return(true, nil)
		deps.repo.EXPECT().HasTechnology(ctx, employeeID, technologyID).Return(false, nil)

		err := deps.service.RemoveTechnology(ctx, employeeID, technologyID)

		assert.ErrorIs(t, err, employeeerrors.ErrTechnologyNotAssigned)
	})

	t.Run("malformed technology id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		err := deps.service.AddTechnology(ctx, employeeID, "go")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTechnologyID)
	})
}
