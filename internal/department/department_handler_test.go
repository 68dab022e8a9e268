package department_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/department"
	departmenterrors "go-hrm/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type listBody struct {
	Ok   bool                            `json:"ok"`
	Data []department.DepartmentResponse `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.NewString(), Name: req.Name}, nil
			},
		}
		h := department.NewHandler(svc)
		r := setupRouter()
		r.POST("/departments", h.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("missing name", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		r := setupRouter()
		r.POST("/departments", h.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
			return []department.DepartmentResponse{
				{ID: "1", Name: "Sales", UserCount: 1},
				{ID: "2", Name: "Engineering", UserCount: 5},
				{ID: "3", Name: "Support", UserCount: 2},
			}, nil
		},
	}
	h := department.NewHandler(svc)
	r := setupRouter()
	r.GET("/departments", h.GetAll)

	t.Run("sorted by name", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

		var body listBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Engineering", body.Data[0].Name)
		assert.Equal(t, int64(3), body.Meta.Total)
	})

	t.Run("search and sort by user count desc", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments?q=s&sort_by=user_count&sort_dir=desc", nil))

		var body listBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 2)
		assert.Equal(t, "Support", body.Data[0].Name)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	h := department.NewHandler(svc)
	r := setupRouter()
	r.GET("/departments/:id", h.GetById)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Department not found")
}

func TestDepartmentHandler_Update(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeDepartmentService{
		UpdateFn: func(ctx context.Context, gotID string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
			assert.Equal(t, id, gotID)
			return department.DepartmentResponse{ID: gotID, Name: req.Name}, nil
		},
	}
	h := department.NewHandler(svc)
	r := setupRouter()
	r.PUT("/departments/:id", h.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/departments/"+id, strings.NewReader(`{"name":"Platform"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Platform")
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id string) error { return nil },
	}
	h := department.NewHandler(svc)
	r := setupRouter()
	r.DELETE("/departments/:id", h.Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
