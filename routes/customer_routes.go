package routes

import (
	"github.com/BerniceZTT/estate_crm/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes 注册客户路由
func RegisterCustomerRoutes(router *gin.Engine) {
	group := router.Group("/api/customers")
	{
		group.GET("", controllers.ListCustomers)
		group.POST("", controllers.SaveCustomer)
		group.DELETE("/:id", controllers.DeleteCustomer)
		group.POST("/:id/favorite", controllers.ToggleFavorite)
	}
}
