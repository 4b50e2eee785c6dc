package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/repository"
	"github.com/BerniceZTT/estate_crm/utils"
)

// SaveActivity 保存活动记录(新建或更新)
func SaveActivity(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if activity.CustomerID == "" {
		utils.HandleError(c, utils.CreateBadRequestError("客户ID不能为空"))
		return
	}

	ctx := context.Background()

	// 验证客户是否存在
	if _, err := repository.FindCustomerByID(ctx, activity.CustomerID); err != nil {
		utils.HandleError(c, err)
		return
	}

	// 内嵌记录补齐标识
	for i := range activity.Images {
		if activity.Images[i].ID == "" {
			activity.Images[i].ID = uuid.NewString()
		}
	}
	for i := range activity.FollowUps {
		if activity.FollowUps[i].ID == "" {
			activity.FollowUps[i].ID = uuid.NewString()
		}
		if activity.FollowUps[i].CreatedAt.IsZero() {
			activity.FollowUps[i].CreatedAt = time.Now()
		}
	}

	if err := repository.SaveActivity(ctx, &activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, activity, "保存活动成功")
}

// DeleteActivity 删除活动记录
func DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.HandleError(c, utils.CreateBadRequestError("活动ID不能为空"))
		return
	}

	ctx := context.Background()
	if err := repository.DeleteActivity(ctx, id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "删除活动成功")
}

// AddFollowUp 向活动追加后续记录
func AddFollowUp(c *gin.Context) {
	activityID := c.Param("id")

	var input models.CreateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	activity, err := repository.FindActivityByID(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	followUp := models.FollowUp{
		ID:        uuid.NewString(),
		Content:   input.Content,
		CreatedAt: now,
		Date:      now.Format(time.RFC3339),
	}
	activity.FollowUps = append(activity.FollowUps, followUp)

	if err := repository.SaveActivity(ctx, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, followUp, "追加后续记录成功", http.StatusCreated)
}

// UpdateFollowUp 修改活动中的后续记录内容
func UpdateFollowUp(c *gin.Context) {
	activityID := c.Param("id")
	followUpID := c.Param("followUpId")

	var input models.UpdateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	ctx := context.Background()
	activity, err := repository.FindActivityByID(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found := false
	for i := range activity.FollowUps {
		if activity.FollowUps[i].ID == followUpID {
			activity.FollowUps[i].Content = input.Content
			found = true
			break
		}
	}
	if !found {
		utils.HandleError(c, utils.CreateNotFoundError("后续记录"))
		return
	}

	if err := repository.SaveActivity(ctx, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, activity, "修改后续记录成功")
}

// DeleteFollowUp 删除活动中的后续记录
func DeleteFollowUp(c *gin.Context) {
	activityID := c.Param("id")
	followUpID := c.Param("followUpId")

	ctx := context.Background()
	activity, err := repository.FindActivityByID(ctx, activityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	remaining := activity.FollowUps[:0]
	for _, followUp := range activity.FollowUps {
		if followUp.ID != followUpID {
			remaining = append(remaining, followUp)
		}
	}
	activity.FollowUps = remaining

	if err := repository.SaveActivity(ctx, activity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "删除后续记录成功")
}
