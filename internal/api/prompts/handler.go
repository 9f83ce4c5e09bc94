package prompts

import (
	"net/http"

	"github.com/ArvisPrime/promptgen/internal/services"
	"github.com/ArvisPrime/promptgen/internal/utils"
	"github.com/gin-gonic/gin"
)

// Featured godoc
// @Summary List featured prompts
// @Description Curated global prompts flagged as featured
// @Tags prompts
// @Produce json
// @Success 200 {array} models.GlobalPrompt
// @Failure 500 {object} utils.ErrorBody
// @Router /prompts/featured [get]
func Featured(c *gin.Context) {
	list, err := services.ListFeaturedPrompts()
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
