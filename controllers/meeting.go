package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/repository"
	"github.com/BerniceZTT/estate_crm/utils"
)

// SaveMeeting 保存约访记录(新建或更新)
func SaveMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if meeting.CustomerID == "" {
		utils.HandleError(c, utils.CreateBadRequestError("客户ID不能为空"))
		return
	}
	if meeting.Date == "" {
		utils.HandleError(c, utils.CreateBadRequestError("约访日期不能为空"))
		return
	}

	ctx := context.Background()

	// 验证客户是否存在
	if _, err := repository.FindCustomerByID(ctx, meeting.CustomerID); err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := repository.SaveMeeting(ctx, &meeting); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, meeting, "保存约访成功")
}

// DeleteMeeting 删除约访记录
func DeleteMeeting(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.HandleError(c, utils.CreateBadRequestError("约访ID不能为空"))
		return
	}

	ctx := context.Background()
	if err := repository.DeleteMeeting(ctx, id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "删除约访成功")
}
