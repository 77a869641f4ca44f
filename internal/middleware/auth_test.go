package middleware

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"assessment_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func get(router *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareDemoMode(t *testing.T) {
	router := protectedRouter(&config.Config{})

	t.Run("any bearer accepted", func(t *testing.T) {
		w := get(router, "/protected", "anything-at-all")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@esigma.com")
	})

	t.Run("token via query param", func(t *testing.T) {
		w := get(router, "/protected?token=opaque", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token rejected", func(t *testing.T) {
		w := get(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func testUser() *model.User {
	return &model.User{BaseModel: model.BaseModel{ID: 9}, Email: "officer@esigma.com", RoleID: 5}
}

func TestAuthMiddlewareLiveMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "db.local"
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	router := protectedRouter(cfg)

	t.Run("garbage token rejected", func(t *testing.T) {
		w := get(router, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signed token accepted", func(t *testing.T) {
		user := testUser()
		token, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
		assert.NoError(t, err)

		w := get(router, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.Email)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		token, err := util.GenerateJWT(testUser(), "some-other-secret-some-other-secret", time.Hour)
		assert.NoError(t, err)

		w := get(router, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
