package service

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A service built with a nil repository runs against the demo roster.
func demoAuthService() *AuthService {
	return NewAuthService(nil, &config.Config{})
}

func TestDemoLogin(t *testing.T) {
	svc := demoAuthService()

	t.Run("admin account", func(t *testing.T) {
		res := svc.Login("admin@esigma.com", DemoPassword)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Data.Token)
		assert.Equal(t, "admin@esigma.com", res.Data.User.Email)
		if assert.NotNil(t, res.Data.User.Role) {
			assert.Equal(t, "Admin", res.Data.User.Role.Name)
			assert.Equal(t, 1, res.Data.User.Role.Level)
		}
	})

	t.Run("every roster account shares the password", func(t *testing.T) {
		for email := range demoRoster {
			res := svc.Login(email, DemoPassword)
			assert.True(t, res.Success, email)
			assert.True(t, res.Data.User.IsActive, email)
		}
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		first := svc.Login("officer@esigma.com", DemoPassword)
		second := svc.Login("officer@esigma.com", DemoPassword)
		assert.NotEqual(t, first.Data.Token, second.Data.Token)
	})
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestDemoLoginFailuresSameMessage(t *testing.T) {
	svc := demoAuthService()

	unknown := svc.Login("nobody@esigma.com", DemoPassword)
	wrongPassword := svc.Login("admin@esigma.com", "wrong")

	assert.False(t, unknown.Success)
	assert.False(t, wrongPassword.Success)
	assert.Equal(t, util.MsgInvalidCredentials, unknown.Message)
	assert.Equal(t, unknown.Message, wrongPassword.Message)
	assert.Empty(t, unknown.Data.Token)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	res := demoAuthService().Logout()
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Message)
}
