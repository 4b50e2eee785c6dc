package routes

import (
	"github.com/BerniceZTT/estate_crm/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterBackupRoutes 注册备份/恢复路由
func RegisterBackupRoutes(router *gin.Engine) {
	router.GET("/api/backup", controllers.Backup)
	router.POST("/api/restore", controllers.Restore)
}
