package position_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/position"
	positionerrors "go-hrm/internal/position/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePositionService struct {
	CreateFn  func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetAllFn  func(ctx context.Context) ([]position.PositionResponse, error)
	GetByIDFn func(ctx context.Context, id string) (position.PositionResponse, error)
	UpdateFn  func(ctx context.Context, id string, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakePositionService) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakePositionService) GetAll(ctx context.Context) ([]position.PositionResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakePositionService) GetByID(ctx context.Context, id string) (position.PositionResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakePositionService) Update(ctx context.Context, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakePositionService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestPositionHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{ID: uuid.NewString(), Title: req.Title}, nil
			},
		}
		r := setupRouter()
		r.POST("/positions", position.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{"title":"QA Engineer"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "QA Engineer")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrPositionTitleExists
			},
		}
		r := setupRouter()
		r.POST("/positions", position.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{"title":"QA Engineer"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPositionHandler_GetAll(t *testing.T) {
	svc := &fakePositionService{
		GetAllFn: func(ctx context.Context) ([]position.PositionResponse, error) {
			return []position.PositionResponse{
				{ID: "1", Title: "Backend Engineer"},
				{ID: "2", Title: "Designer"},
				{ID: "3", Title: "Frontend Engineer"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/positions", position.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/positions?q=engineer&page=1&page_size=1", nil))

	var body struct {
		Data []position.PositionResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(2), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestPositionHandler_Delete(t *testing.T) {
	svc := &fakePositionService{
		DeleteFn: func(ctx context.Context, id string) error {
			return positionerrors.ErrPositionNotFound
		},
	}
	r := setupRouter()
	r.DELETE("/positions/:id", position.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/positions/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
