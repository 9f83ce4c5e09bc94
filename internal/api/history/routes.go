package history

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	historyGroup := router.Group("/history")
	{
		historyGroup.GET("", List)
		historyGroup.POST("", Append)
		historyGroup.DELETE("", Clear)
	}
}
