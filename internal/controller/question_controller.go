package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary List a section's questions
// @Description Ordered by question order; options and derived correct answers included
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Section id"
// @Success 200 {object} util.Result[[]model.Question]
// @Router /api/sections/{id}/questions [get]
func (c *QuestionController) ListBySection(ctx *gin.Context) {
	sectionID := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.QuestionService.ListBySection(sectionID))
}

// @Summary Create a question with its options
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body service.CreateQuestionInput true "New question"
// @Success 200 {object} util.Result[model.Question]
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var input service.CreateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, c.QuestionService.CreateQuestion(input))
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question id"
// @Param question body model.QuestionUpdate true "Fields to change"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/questions/{id} [patch]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var update model.QuestionUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.QuestionService.UpdateQuestion(id, &update))
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.QuestionService.DeleteQuestion(id))
}

// @Summary Upload questions from CSV
// @Tags questions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} util.Result[service.UploadSummary]
// @Router /api/questions/upload [post]
func (c *QuestionController) UploadCSV(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.BadRequest(ctx, "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.BadRequest(ctx, "cannot read uploaded file")
		return
	}

	ctx.JSON(http.StatusOK, c.QuestionService.UploadCSV(fileHeader.Filename, data))
}
