package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrm/internal/audit"
	"go-hrm/internal/auth"
	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/position"
	"go-hrm/internal/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:app_registry_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&department.Department{}, &position.Position{}, &user.User{}, &auth.Account{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Env: "test",
		JWT: config.JWTConfig{Secret: "test-secret", AccessTTL: time.Hour},
		RateLimit: config.RateLimitConfig{
			LoginPerSecond:   100,
			LoginBurst:       100,
			AccountPerSecond: 100,
			AccountBurst:     100,
		},
	}

	router := gin.New()
	require.NoError(t, registerModules(router, Deps{
		Config: cfg,
		DB:     sqlDB,
		GormDB: db,
		Redis:  redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Audit:  audit.Nop(),
	}))
	return router, db
}

func seedAccount(t *testing.T, db *gorm.DB, username, password string, staff bool) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, auth.NewRepository(db).Create(context.Background(), &auth.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsStaff:      staff,
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}))
}

func serve(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := serve(r, http.MethodPost, "/api/v1/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func TestRegisterModules(t *testing.T) {
	r, db := newTestRouter(t)
	seedAccount(t, db, "admin", "admin123", true)
	seedAccount(t, db, "user", "user123", false)

	t.Run("health and metrics are public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", "", "").Code)

		w := serve(r, http.MethodGet, "/metrics", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "hrm_http_requests_total")
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/users", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("regular account reads but cannot administer", func(t *testing.T) {
		token := login(t, r, "user", "user123")

		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/users", "", token).Code)
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/users/statistics", "", token).Code)
		assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/api/v1/admins", "", token).Code)
		assert.Equal(t, http.StatusForbidden,
			serve(r, http.MethodPost, "/api/v1/departments", `{"name":"Engineering"}`, token).Code)
	})

	t.Run("admin manages departments and users", func(t *testing.T) {
		token := login(t, r, "admin", "admin123")

		w := serve(r, http.MethodPost, "/api/v1/departments", `{"name":"Engineering"}`, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = serve(r, http.MethodPost, "/api/v1/users",
			`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","position":"Engineer"}`, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = serve(r, http.MethodGet, "/api/v1/users/positions", "", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":["Engineer"]`)

		w = serve(r, http.MethodGet, "/api/v1/admins", "", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"admin"`)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		token := login(t, r, "user", "user123")

		assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/auth/logout", "", token).Code)
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/v1/auth/me", "", token).Code)
	})
}
