package routes

import (
	"github.com/BerniceZTT/estate_crm/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterActivityRoutes 注册活动路由
func RegisterActivityRoutes(router *gin.Engine) {
	group := router.Group("/api/activities")
	{
		group.POST("", controllers.SaveActivity)
		group.DELETE("/:id", controllers.DeleteActivity)
		group.POST("/:id/followups", controllers.AddFollowUp)
		group.PUT("/:id/followups/:followUpId", controllers.UpdateFollowUp)
		group.DELETE("/:id/followups/:followUpId", controllers.DeleteFollowUp)
	}
}
