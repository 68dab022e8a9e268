package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/domain"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

type fakeResolver struct {
	ResolveFn func(ctx context.Context, token string) (domain.Identity, error)
}

func (f *fakeResolver) ResolveToken(ctx context.Context, token string) (domain.Identity, error) {
	return f.ResolveFn(ctx, token)
}

type fakeRBAC struct {
	EnforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(req)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withIdentity(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	accountID := uuid.New()
	resolver := &fakeResolver{
		ResolveFn: func(ctx context.Context, token string) (domain.Identity, error) {
			if token != "good-token" {
				return domain.Identity{}, apperror.New(apperror.CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
			}
			return domain.Identity{AccountID: accountID, Username: "admin", Role: domain.RoleAdmin}, nil
		},
	}

	newRouter := func() *gin.Engine {
		r := setupRouter()
		r.GET("/me", middleware.AuthMiddleware(resolver), func(c *gin.Context) {
			identity, ok := middleware.CurrentIdentity(c)
			assert.True(t, ok)
			assert.Equal(t, accountID.String(), contextutil.GetAccountID(c.Request.Context()))
			c.String(http.StatusOK, identity.Username)
		})
		return r
	}

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("cookie fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "good-token"})
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeUnauthorized, errorCode(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer forged")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, w))
	})
}

func TestRBACAuthorize(t *testing.T) {
	svc := &fakeRBAC{
		EnforceFn: func(req domain.EnforceRequest) (bool, error) {
			switch req.Role {
			case domain.RoleAdmin:
				return true, nil
			case "broken":
				return false, errors.New("policy store down")
			}
			return false, nil
		},
	}

	run := func(role string) *httptest.ResponseRecorder {
		r := setupRouter()
		r.DELETE("/users/:id",
			withIdentity(domain.Identity{Role: role}),
			middleware.RBACAuthorize(svc, "user", "delete"),
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
		return w
	}

	assert.Equal(t, http.StatusNoContent, run(domain.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, run(domain.RoleUser).Code)
	assert.Equal(t, http.StatusInternalServerError, run("broken").Code)

	t.Run("no identity", func(t *testing.T) {
		r := setupRouter()
		r.GET("/x", middleware.RBACAuthorize(svc, "user", "read"), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.POST("/login", middleware.RateLimitByIP(rate.Limit(0.001), 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestAuthMiddleware_AccountLimiter(t *testing.T) {
	resolver := &fakeResolver{
		ResolveFn: func(ctx context.Context, token string) (domain.Identity, error) {
			return domain.Identity{AccountID: uuid.MustParse(token)}, nil
		},
	}
	limiter := middleware.NewKeyedRateLimiter(rate.Limit(0.001), 1)

	r := setupRouter()
	r.GET("/x", middleware.AuthMiddleware(resolver, limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	first, second := uuid.NewString(), uuid.NewString()
	assert.Equal(t, http.StatusOK, call(first))
	assert.Equal(t, http.StatusTooManyRequests, call(first))
	assert.Equal(t, http.StatusOK, call(second))
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})

	t.Run("replaces unusable incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("a", 65))
		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewHTTPMetrics(reg)

	r := setupRouter()
	r.Use(middleware.Metrics(m))
	r.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	}

	count, err := testutil.GatherAndCount(reg, "hrm_http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
