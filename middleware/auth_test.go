package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Globetrek/dao"
	"Globetrek/middleware"
	"Globetrek/models"
	appctx "Globetrek/pkg/context"
	"Globetrek/pkg/database"
	"Globetrek/pkg/jwt"
	"Globetrek/pkg/snowflake"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var secret = []byte("middleware-test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	id := snowflake.GenID()
	user := &models.User{
		ID:       id,
		Name:     fmt.Sprintf("user-%d", id),
		Username: fmt.Sprintf("username-%d", id),
		Email:    fmt.Sprintf("user-%d@example.com", id),
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func token(t *testing.T, user *models.User, ttl time.Duration) string {
	t.Helper()

	tok, err := jwt.GenerateToken(secret, user.ID, user.Name, user.Email, user.Role, ttl)
	require.NoError(t, err)
	return tok
}

// authedRouter 按线上顺序挂认证、身份、授权三道关卡
func authedRouter(db *gorm.DB, requireAdmin bool) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{
		middleware.Auth(secret),
		middleware.CurrentUser(dao.NewUsers(db)),
	}
	if requireAdmin {
		chain = append(chain, middleware.RequireAdmin())
	}
	chain = append(chain, func(c *gin.Context) {
		user, err := appctx.GetCurrentUser(c)
		if err != nil {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, "hello %d", user.ID)
	})
	r.GET("/protected", chain...)
	return r
}

func do(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejections(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleMember)
	r := authedRouter(db, false)

	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "not bearer", authorization: "Basic abc123"},
		{name: "garbage token", authorization: "Bearer not-a-token"},
		{name: "expired token", authorization: "Bearer " + token(t, user, -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthValidToken(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleMember)
	r := authedRouter(db, false)

	w := do(r, "Bearer "+token(t, user, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("hello %d", user.ID), w.Body.String())
}

// 令牌合法但账号已注销: 404 而不是 401
func TestCurrentUserDeletedAccount(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleMember)
	tok := token(t, user, time.Hour)
	require.NoError(t, db.Delete(user).Error)

	r := authedRouter(db, false)
	w := do(r, "Bearer "+tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db, models.RoleMember)
	admin := seedUser(t, db, models.RoleAdmin)
	r := authedRouter(db, true)

	w := do(r, "Bearer "+token(t, member, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, "Bearer "+token(t, admin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

// 认证失败时后续关卡与业务处理都不应被触达
func TestPipelineShortCircuit(t *testing.T) {
	db := newTestDB(t)
	reached := false

	r := gin.New()
	r.GET("/protected",
		middleware.Auth(secret),
		middleware.CurrentUser(dao.NewUsers(db)),
		func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		},
	)

	w := do(r, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}
