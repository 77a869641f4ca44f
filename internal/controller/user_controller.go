package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[[]model.User]
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.UserService.ListUsers())
}

// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body service.CreateUserInput true "New user"
// @Success 200 {object} util.Result[model.User]
// @Router /api/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var input service.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, c.UserService.CreateUser(input))
}

// @Summary Update a user
// @Description Partial update; only supplied fields change
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User id"
// @Param user body model.UserUpdate true "Fields to change"
// @Success 200 {object} util.Result[model.User]
// @Router /api/users/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var update model.UserUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.UserService.UpdateUser(id, &update))
}

// @Summary Delete a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.UserService.DeleteUser(id))
}
