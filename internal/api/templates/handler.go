package templates

import (
	"net/http"

	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/ArvisPrime/promptgen/internal/services"
	"github.com/ArvisPrime/promptgen/internal/utils"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List templates
// @Description Store-backed templates followed by locally created ones
// @Tags templates
// @Produce json
// @Success 200 {array} models.Template
// @Failure 500 {object} utils.ErrorBody
// @Router /templates [get]
func List(c *gin.Context) {
	list, err := services.ListTemplates()
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Create a custom template
// @Description Store a user-created template in local storage only
// @Tags templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Create Template Request"
// @Success 200 {object} models.Template
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /templates [post]
func Create(c *gin.Context) {
	var req CreateTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateCustomTemplate(req.Name, req.Description, req.Structure,
		models.TemplateCategory(req.Category), req.Placeholders)
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// ClearCustom godoc
// @Summary Clear custom templates
// @Description Bulk-remove all locally created templates; seeded ones are untouched
// @Tags templates
// @Success 204
// @Failure 500 {object} utils.ErrorBody
// @Router /templates/custom [delete]
func ClearCustom(c *gin.Context) {
	if err := services.ClearCustomTemplates(); err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
