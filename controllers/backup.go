package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/repository"
	"github.com/BerniceZTT/estate_crm/utils"
)

// Backup 导出全部数据为备份JSON
func Backup(c *gin.Context) {
	ctx := context.Background()

	customers, err := repository.FetchAllCustomers(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	activities, err := repository.FetchAllActivities(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	meetings, err := repository.FetchAllMeetings(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	backup := models.BackupData{
		Customers:  customers,
		Activities: activities,
		Meetings:   meetings,
	}

	filename := fmt.Sprintf("customer-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, backup)
}

// Restore 从备份JSON恢复数据，按标识合并写入，保留原有标识
func Restore(c *gin.Context) {
	var backup models.BackupData
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的备份文件格式"})
		return
	}

	ctx := context.Background()

	if err := repository.SaveManyCustomers(ctx, backup.Customers); err != nil {
		utils.HandleError(c, err)
		return
	}
	if err := repository.SaveManyActivities(ctx, backup.Activities); err != nil {
		utils.HandleError(c, err)
		return
	}
	if err := repository.SaveManyMeetings(ctx, backup.Meetings); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customers":  len(backup.Customers),
		"activities": len(backup.Activities),
		"meetings":   len(backup.Meetings),
	}, "数据恢复完成")

	utils.SuccessResponse(c, gin.H{
		"customers":  len(backup.Customers),
		"activities": len(backup.Activities),
		"meetings":   len(backup.Meetings),
	}, "数据恢复成功")
}
