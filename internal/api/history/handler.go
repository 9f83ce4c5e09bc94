package history

import (
	"net/http"

	"github.com/ArvisPrime/promptgen/internal/services"
	"github.com/ArvisPrime/promptgen/internal/utils"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List prompt history
// @Description Saved refinements, most-recent-first
// @Tags history
// @Produce json
// @Success 200 {array} localstore.HistoryItem
// @Failure 500 {object} utils.ErrorBody
// @Router /history [get]
func List(c *gin.Context) {
	c.JSON(http.StatusOK, services.History.List())
}

// Append godoc
// @Summary Save a refinement to history
// @Description Record a (raw input, refined prompt, template) triple
// @Tags history
// @Accept json
// @Produce json
// @Param request body AppendHistoryRequest true "Append History Request"
// @Success 200 {object} localstore.HistoryItem
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /history [post]
func Append(c *gin.Context) {
	var req AppendHistoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	item, err := services.History.Append(req.RawInput, req.RefinedPrompt, req.TemplateID)
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Clear godoc
// @Summary Clear prompt history
// @Description Empty the ledger and remove its persisted record
// @Tags history
// @Success 204
// @Failure 500 {object} utils.ErrorBody
// @Router /history [delete]
func Clear(c *gin.Context) {
	if err := services.History.Clear(); err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
