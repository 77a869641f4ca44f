package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Log in
// @Description Authenticates by email and password; demo roster when no database is configured
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} util.Result[service.LoginData]
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, c.AuthService.Login(req.Email, req.Password))
}

// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} util.Result[struct{}]
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AuthService.Logout())
}
