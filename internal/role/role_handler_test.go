package role_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-workforce/internal/role"
	roleerrors "go-workforce/internal/role/errors"
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRoleService struct {
	CreateFn       func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetAllFn       func(ctx context.Context, filter role.RoleFilter) ([]role.RoleResponse, error)
	GetByIDFn      func(ctx context.Context, id string) (role.RoleResponse, error)
	GetEmployeesFn func(ctx context.Context, id string) ([]role.RoleEmployeeResponse, error)
	UpdateFn       func(ctx context.Context, id string, req role.UpdateRoleRequest) (role.RoleResponse, error)
	DeleteFn       func(ctx context.Context, id string) error
}

func (f *fakeRoleService) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeRoleService) GetAll(ctx context.Context, filter role.RoleFilter) ([]role.RoleResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeRoleService) GetByID(ctx context.Context, id string) (role.RoleResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeRoleService) GetEmployees(ctx context.Context, id string) ([]role.RoleEmployeeResponse, error) {
	return f.GetEmployeesFn(ctx, id)
}
func (f *fakeRoleService) Update(ctx context.Context, id string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeRoleService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body != "" {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func TestRoleHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				assert.Equal(t, "Engineer", req.Name)
				assert.Equal(t, 3000.0, *req.MinSalary)
				return role.RoleResponse{ID: uuid.NewString(), Name: req.Name, MinSalary: *req.MinSalary}, nil
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/roles", `{"name":"Engineer","min_salary":3000}`)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decode(t, w).Ok)
	})

	t.Run("missing name", func(t *testing.T) {
		h := role.NewHandler(&fakeRoleService{})
		c, w := newContext(http.MethodPost, "/roles", `{"min_salary":3000}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
		assert.Equal(t, "Name is required", env.Error.Message)
	})

	t.Run("negative min salary", func(t *testing.T) {
		h := role.NewHandler(&fakeRoleService{})
		c, w := newContext(http.MethodPost, "/roles", `{"name":"Engineer","min_salary":-1}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Min Salary must be at least 0", decode(t, w).Error.Message)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				return role.RoleResponse{}, roleerrors.ErrRoleAlreadyExists
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/roles", `{"name":"Engineer"}`)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeConflict, decode(t, w).Error.Code)
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				return role.RoleResponse{}, errors.New("pq: connection reset")
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/roles", `{"name":"Engineer"}`)

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode(t, w).Error.Message)
	})
}

func TestRoleHandler_GetAll(t *testing.T) {
	t.Run("filters are passed through", func(t *testing.T) {
		svc := &fakeRoleService{
			GetAllFn: func(ctx context.Context, filter role.RoleFilter) ([]role.RoleResponse, error) {
				assert.Equal(t, "eng", filter.Name)
				assert.Equal(t, 2500.0, *filter.MinSalary)
				return []role.RoleResponse{{ID: uuid.NewString(), Name: "Engineer"}}, nil
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/roles?name=eng&minimum_salary=2500", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed minimum salary", func(t *testing.T) {
		h := role.NewHandler(&fakeRoleService{})
		c, w := newContext(http.MethodGet, "/roles?minimum_salary=lots", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no content has empty body", func(t *testing.T) {
		svc := &fakeRoleService{
			GetAllFn: func(ctx context.Context, filter role.RoleFilter) ([]role.RoleResponse, error) {
				return nil, apperror.ErrNoContent
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/roles", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRoleHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeRoleService{
			GetByIDFn: func(ctx context.Context, id string) (role.RoleResponse, error) {
				return role.RoleResponse{}, roleerrors.ErrRoleNotFound
			},
		}
		h := role.NewHandler(svc)
		id := uuid.NewString()
		c, w := newContext(http.MethodGet, "/roles/"+id, "")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoleHandler_GetEmployees(t *testing.T) {
	svc := &fakeRoleService{
		GetEmployeesFn: func(ctx context.Context, id string) ([]role.RoleEmployeeResponse, error) {
			return []role.RoleEmployeeResponse{{ID: uuid.NewString(), Name: "Ada", Surname: "Lovelace"}}, nil
		},
	}
	h := role.NewHandler(svc)
	id := uuid.NewString()
	c, w := newContext(http.MethodGet, "/roles/"+id+"/employees", "")
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.GetEmployees(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeRoleService{
			UpdateFn: func(ctx context.Context, rid string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
				assert.Equal(t, id, rid)
				assert.Nil(t, req.MinSalary)
				return role.RoleResponse{ID: rid, Name: *req.Name}, nil
			},
		}
		h := role.NewHandler(svc)
		c, w := newContext(http.MethodPut, "/roles/"+id, `{"name":"Architect"}`)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not modified has empty body", func(t *testing.T) {
		svc := &fakeRoleService{
			UpdateFn: func(ctx context.Context, rid string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
				return role.RoleResponse{}, apperror.ErrNotModified
			},
		}
		h := role.NewHandler(svc)
		id := uuid.NewString()
		c, w := newContext(http.MethodPut, "/roles/"+id, `{}`)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRoleHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeRoleService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}
		h := role.NewHandler(svc)
		id := uuid.NewString()
		c, w := newContext(http.MethodDelete, "/roles/"+id, "")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("in use", func(t *testing.T) {
		svc := &fakeRoleService{
			DeleteFn: func(ctx context.Context, id string) error { return roleerrors.ErrRoleInUse },
		}
		h := role.NewHandler(svc)
		id := uuid.NewString()
		c, w := newContext(http.MethodDelete, "/roles/"+id, "")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidState, decode(t, w).Error.Code)
	})
}
