package controller

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewAuthController(service.NewAuthService(nil, &config.Config{}))
	r := gin.New()
	r.POST("/api/auth/login", c.Login)
	r.POST("/api/auth/logout", c.Logout)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter()

	t.Run("valid demo credentials", func(t *testing.T) {
		w := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "admin@esigma.com",
			"password": service.DemoPassword,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
				User  struct {
					Email string `json:"email"`
				} `json:"user"`
			} `json:"data"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Data.Token)
		assert.Equal(t, "admin@esigma.com", res.Data.User.Email)
	})

	t.Run("bad credentials still return 200 with failure envelope", func(t *testing.T) {
		w := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "admin@esigma.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid email or password", res.Message)
	})

	t.Run("missing fields rejected at binding", func(t *testing.T) {
		w := postJSON(t, router, "/api/auth/login", gin.H{"email": "admin@esigma.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router := newAuthRouter()

	w := postJSON(t, router, "/api/auth/logout", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
}
