package ai

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	aiGroup := router.Group("/ai")
	{
		aiGroup.POST("/generate", Generate)
		aiGroup.POST("/test-prompt", TestPrompt)
	}
}
