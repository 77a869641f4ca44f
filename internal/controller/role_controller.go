package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	RoleService *service.RoleService
}

func NewRoleController(roleService *service.RoleService) *RoleController {
	return &RoleController{RoleService: roleService}
}

type menuAccessRequest struct {
	MenuAccess []string `json:"menuAccess" binding:"required"`
}

// @Summary List roles
// @Description Roles ordered by authority level, most authoritative first
// @Tags roles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[[]model.Role]
// @Router /api/roles [get]
func (c *RoleController) ListRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.RoleService.ListRoles())
}

// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param role body service.CreateRoleInput true "New role"
// @Success 200 {object} util.Result[model.Role]
// @Router /api/roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var input service.CreateRoleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, c.RoleService.CreateRole(input))
}

// @Summary Update a role
// @Description Partial update; authority level is immutable here
// @Tags roles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Role id"
// @Param role body model.RoleUpdate true "Fields to change"
// @Success 200 {object} util.Result[model.Role]
// @Router /api/roles/{id} [patch]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	var update model.RoleUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.RoleService.UpdateRole(id, &update))
}

// @Summary Replace a role's accessible menus
// @Tags roles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Role id"
// @Param menus body menuAccessRequest true "Menu identifiers"
// @Success 200 {object} util.Result[model.Role]
// @Router /api/roles/{id}/menu-access [put]
func (c *RoleController) UpdateMenuAccess(ctx *gin.Context) {
	var req menuAccessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.RoleService.UpdateMenuAccess(id, req.MenuAccess))
}

// @Summary Delete a role
// @Tags roles
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Role id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.RoleService.DeleteRole(id))
}
