package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// @Summary Get a test session
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Session id"
// @Success 200 {object} util.Result[model.TestSession]
// @Router /api/sessions/{id} [get]
func (c *TestController) GetSession(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.TestService.GetSession(id))
}

// @Summary List the caller's test sessions
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[[]model.TestSession]
// @Router /api/sessions [get]
func (c *TestController) ListMySessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	ctx.JSON(http.StatusOK, c.TestService.ListSessionsByUser(claims.UserID))
}
