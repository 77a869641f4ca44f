package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	SettingService *service.SettingService
}

func NewSettingController(settingService *service.SettingService) *SettingController {
	return &SettingController{SettingService: settingService}
}

type updateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// @Summary List system settings
// @Description Ordered by category
// @Tags settings
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} util.Result[[]model.SystemSetting]
// @Router /api/settings [get]
func (c *SettingController) ListSettings(ctx *gin.Context) {
	if category := ctx.Query("category"); category != "" {
		ctx.JSON(http.StatusOK, c.SettingService.ListByCategory(category))
		return
	}
	ctx.JSON(http.StatusOK, c.SettingService.ListSettings())
}

// @Summary Update a setting value
// @Tags settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Setting key"
// @Param setting body updateSettingRequest true "New value"
// @Success 200 {object} util.Result[model.SystemSetting]
// @Router /api/settings/{key} [put]
func (c *SettingController) UpdateSetting(ctx *gin.Context) {
	var req updateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	editor := ""
	if claims := util.GetUserFromContext(ctx); claims != nil {
		editor = claims.Email
	}

	ctx.JSON(http.StatusOK, c.SettingService.UpdateSetting(ctx.Param("key"), req.Value, editor))
}
