package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{SurveyService: surveyService}
}

// @Summary List surveys
// @Description Newest first; sections are not loaded here
// @Tags surveys
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[[]model.Survey]
// @Router /api/surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.SurveyService.ListSurveys())
}

// @Summary Create a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param survey body service.CreateSurveyInput true "New survey"
// @Success 200 {object} util.Result[model.Survey]
// @Router /api/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var input service.CreateSurveyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if claims := util.GetUserFromContext(ctx); claims != nil && input.CreatedBy == 0 {
		input.CreatedBy = claims.UserID
	}
	ctx.JSON(http.StatusOK, c.SurveyService.CreateSurvey(input))
}

// @Summary Update a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Survey id"
// @Param survey body model.SurveyUpdate true "Fields to change"
// @Success 200 {object} util.Result[model.Survey]
// @Router /api/surveys/{id} [patch]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	var update model.SurveyUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.SurveyService.UpdateSurvey(id, &update))
}

// @Summary Delete a survey
// @Tags surveys
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Survey id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.SurveyService.DeleteSurvey(id))
}

// @Summary List a survey's sections
// @Tags surveys
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Survey id"
// @Success 200 {object} util.Result[[]model.Section]
// @Router /api/surveys/{id}/sections [get]
func (c *SurveyController) ListSections(ctx *gin.Context) {
	surveyID := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.SurveyService.ListSections(surveyID))
}

// @Summary Create a section
// @Tags surveys
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param section body service.CreateSectionInput true "New section"
// @Success 200 {object} util.Result[model.Section]
// @Router /api/sections [post]
func (c *SurveyController) CreateSection(ctx *gin.Context) {
	var input service.CreateSectionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, c.SurveyService.CreateSection(input))
}

// @Summary Update a section
// @Tags surveys
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Section id"
// @Param section body model.SectionUpdate true "Fields to change"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/sections/{id} [patch]
func (c *SurveyController) UpdateSection(ctx *gin.Context) {
	var update model.SectionUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.SurveyService.UpdateSection(id, &update))
}

// @Summary Delete a section
// @Tags surveys
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Section id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/sections/{id} [delete]
func (c *SurveyController) DeleteSection(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.SurveyService.DeleteSection(id))
}
