package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediaportal-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedEngine(manager *jwt.Manager) *gin.Engine {
	engine := gin.New()
	engine.POST("/api/news",
		AuthMiddleware(manager),
		AdminMiddleware(),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return engine
}

func doPost(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestMutationAuthorization(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	engine := newProtectedEngine(manager)

	t.Run("NoToken", func(t *testing.T) {
		rec := doPost(engine, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		rec := doPost(engine, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := jwt.NewManager("other-secret")
		token, err := other.GenerateAccessToken("u1", "a@b.c", "admin")
		require.NoError(t, err)

		rec := doPost(engine, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonAdminRole", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("u1", "a@b.c", "editor")
		require.NoError(t, err)

		rec := doPost(engine, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AdminRole", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("u1", "a@b.c", "admin")
		require.NoError(t, err)

		rec := doPost(engine, token)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
