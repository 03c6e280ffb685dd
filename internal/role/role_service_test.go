package role_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/role"
	roleerrors "go-workforce/internal/role/errors"
	roleMock "go-workforce/internal/role/mock"
	"go-workforce/internal/shared/apperror"

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
	service   role.Service
	repo      *roleMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := roleMock.NewMockRepository(ctrl)

	svc := role.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
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

func ptr[T any](v T) *T {
	return &v
}

func TestRoleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - min salary defaults to zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Engineer", "").Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *role.Role) error {
				assert.Equal(t, "Engineer", r.Name)
				assert.Equal(t, float64(0), r.MinSalary)
				assert.NotEqual(t, uuid.Nil, r.ID)
				return nil
			})
		deps.redismock.ExpectDel(role.RoleListCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "  Engineer "})

		assert.NoError(t, err)
		assert.Equal(t, "Engineer", resp.Name)
		assert.Equal(t, float64(0), resp.MinSalary)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("success - explicit min salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Engineer", "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(role.RoleListCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "Engineer", MinSalary: ptr(3000.0)})

		assert.NoError(t, err)
		assert.Equal(t, 3000.0, resp.MinSalary)
	})

	t.Run("blank name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "   "})

		assert.ErrorIs(t, err, apperror.RequiredField("Name"))
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "engineer", "").Return(true, nil)

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "engineer"})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})

	t.Run("unique violation at insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Engineer", "").Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_roles_name_lower"})

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "Engineer"})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})
}

func TestRoleService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []role.RoleResponse{{ID: uuid.NewString(), Name: "Engineer", MinSalary: 3000}}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(role.RoleListCacheKey).SetVal(string(data))

		resp, err := deps.service.GetAll(ctx, role.RoleFilter{})

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roles := []role.Role{{ID: uuid.New(), Name: "Engineer", MinSalary: 3000}}
		expected := []role.RoleResponse{{ID: roles[0].ID.String(), Name: "Engineer", MinSalary: 3000}}
		data, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(role.RoleListCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, role.RoleFilter{}).Return(roles, nil)
		deps.redismock.ExpectSet(role.RoleListCacheKey, data, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, role.RoleFilter{})

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("filtered query bypasses cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		filter := role.RoleFilter{Name: "eng", MinSalary: ptr(1000.0)}
		deps.repo.EXPECT().FindAll(ctx, filter).Return([]role.Role{{ID: uuid.New(), Name: "Engineer"}}, nil)

		resp, err := deps.service.GetAll(ctx, filter)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("empty result is no content", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		filter := role.RoleFilter{Name: "nothing"}
		deps.repo.EXPECT().FindAll(ctx, filter).Return([]role.Role{}, nil)

		_, err := deps.service.GetAll(ctx, filter)

		assert.ErrorIs(t, err, apperror.ErrNoContent)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		filter := role.RoleFilter{Name: "eng"}
		deps.repo.EXPECT().FindAll(ctx, filter).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, filter)

		assert.Error(t, err)
	})
}

func TestRoleService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer"}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "abc")

		assert.ErrorIs(t, err, roleerrors.ErrInvalidRoleID)
	})
}

func TestRoleService_GetEmployees(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empID := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id}, nil)
		deps.repo.EXPECT().FindEmployees(ctx, id.String()).Return([]role.RoleEmployee{
			{ID: empID, Name: "Ada", Surname: "Lovelace", Salary: 4000, RoleID: id},
		}, nil)

		resp, err := deps.service.GetEmployees(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, []role.RoleEmployeeResponse{{ID: empID.String(), Name: "Ada", Surname: "Lovelace", Salary: 4000}}, resp)
	})

	t.Run("nobody holds the role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id}, nil)
		deps.repo.EXPECT().FindEmployees(ctx, id.String()).Return(nil, nil)

		_, err := deps.service.GetEmployees(ctx, id.String())

		assert.ErrorIs(t, err, apperror.ErrNoContent)
	})

	t.Run("role not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetEmployees(ctx, id.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}

func TestRoleService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("all fields empty is not modified", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{Name: ptr("  ")})

		assert.ErrorIs(t, err, apperror.ErrNotModified)
	})

	t.Run("rename", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer", MinSalary: 3000}, nil)
		deps.repo.EXPECT().ExistsByName(ctx, "Architect", id.String()).Return(false, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *role.Role) error {
				assert.Equal(t, "Architect", r.Name)
				assert.Equal(t, 3000.0, r.MinSalary)
				return nil
			})
		deps.redismock.ExpectDel(role.RoleListCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{Name: ptr("Architect")})

		assert.NoError(t, err)
		assert.Equal(t, "Architect", resp.Name)
		assert.Equal(t, 3000.0, resp.MinSalary)
	})

	t.Run("rename to existing name conflicts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer"}, nil)
		deps.repo.EXPECT().ExistsByName(ctx, "Manager", id.String()).Return(true, nil)

		_, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{Name: ptr("Manager")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})

	t.Run("raising min salary above a holder is refused", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer", MinSalary: 3000}, nil)
		deps.repo.EXPECT().CountEmployeesBelowSalary(ctx, id.String(), 5000.0).Return(int64(2), nil)

		_, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{MinSalary: ptr(5000.0)})

		assert.ErrorIs(t, err, roleerrors.ErrMinSalaryAboveHolders)
	})

	t.Run("lowering min salary skips the holder check", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer", MinSalary: 3000}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(role.RoleListCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{MinSalary: ptr(1000.0)})

		assert.NoError(t, err)
		assert.Equal(t, 1000.0, resp.MinSalary)
	})

	t.Run("same values skip persistence", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id, Name: "Engineer", MinSalary: 3000}, nil)

		resp, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{Name: ptr("Engineer"), MinSalary: ptr(3000.0)})

		assert.NoError(t, err)
		assert.Equal(t, "Engineer", resp.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), role.UpdateRoleRequest{Name: ptr("Architect")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}

func TestRoleService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(nil)
		deps.redismock.ExpectDel(role.RoleListCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("role still held", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id.String()).Return(int64(3), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleInUse)
	})

	t.Run("foreign key violation maps to in use", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&role.Role{ID: id}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(&pgconn.PgError{Code: "23503"})

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleInUse)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}
