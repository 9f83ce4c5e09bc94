package prompts

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("/featured", Featured)
	}
}
