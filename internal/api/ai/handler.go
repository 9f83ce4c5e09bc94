package ai

import (
	"errors"
	"net/http"

	"github.com/ArvisPrime/promptgen/internal/services"
	"github.com/ArvisPrime/promptgen/internal/utils"
	"github.com/gin-gonic/gin"
)

// Generate godoc
// @Summary Generate a refined prompt
// @Description Fill a template with the raw input and refine it via the model backend
// @Tags ai
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generate Request"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /ai/generate [post]
func Generate(c *gin.Context) {
	var req GenerateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	refined, err := services.GeneratePrompt(c.Request.Context(), req.TemplateID, req.RawInput, req.TargetModel)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			utils.AbortWithError(c, http.StatusNotFound, err)
			return
		}
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{RefinedPrompt: refined})
}

// TestPrompt godoc
// @Summary Test a prompt against the model backend
// @Description Send an arbitrary prompt for a one-off completion preview
// @Tags ai
// @Accept json
// @Produce json
// @Param request body TestPromptRequest true "Test Prompt Request"
// @Success 200 {object} TestPromptResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /ai/test-prompt [post]
func TestPrompt(c *gin.Context) {
	var req TestPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	completion, err := services.TestPrompt(c.Request.Context(), req.Prompt, req.TargetModel)
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, TestPromptResponse{Completion: completion})
}
