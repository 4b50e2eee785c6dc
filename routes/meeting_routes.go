package routes

import (
	"github.com/BerniceZTT/estate_crm/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterMeetingRoutes 注册约访路由
func RegisterMeetingRoutes(router *gin.Engine) {
	group := router.Group("/api/meetings")
	{
		group.POST("", controllers.SaveMeeting)
		group.DELETE("/:id", controllers.DeleteMeeting)
	}
}
