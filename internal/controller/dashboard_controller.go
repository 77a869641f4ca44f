package controller

import (
	"assessment_backend/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Platform dashboard
// @Description Totals, average score and pass rate; canned breakdowns in demo mode
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[service.Dashboard]
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.DashboardService.GetDashboard())
}
