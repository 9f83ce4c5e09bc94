package templates

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	tplGroup := router.Group("/templates")
	{
		tplGroup.GET("", List)
		tplGroup.POST("", Create)
		tplGroup.DELETE("/custom", ClearCustom)
	}
}
