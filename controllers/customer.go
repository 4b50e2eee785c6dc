package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/repository"
	"github.com/BerniceZTT/estate_crm/service"
	"github.com/BerniceZTT/estate_crm/utils"
)

// ListCustomers 按筛选器返回排好序的客户列表。
// 查询参数: filter, progress, search, sortKey, sortDir。
// 在当前内存快照上合成视图，不查询数据库。
func ListCustomers(c *gin.Context) {
	filter, err := models.ParseViewFilter(c.Query("filter"), c.Query("progress"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	snap := service.Store().Current()
	result := service.Compose(snap, filter, timeNow())

	// 表格层的搜索与列排序
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		result = service.SearchCustomers(result, term)
	}
	if sortKey := c.Query("sortKey"); sortKey != "" {
		result = service.SortByColumn(result, sortKey, c.Query("sortDir") == "desc")
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": result,
		"total":     len(result),
	})
}

// SaveCustomer 保存客户(新建或更新)
func SaveCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if customer.Name == "" {
		utils.HandleError(c, utils.CreateBadRequestError("客户姓名不能为空"))
		return
	}
	if customer.Phone != "" && !utils.IsValidPhone(customer.Phone) {
		utils.HandleError(c, utils.CreateBadRequestError("手机号格式无效"))
		return
	}
	if !models.IsValidStatus(customer.Status) && customer.Status != "" {
		utils.HandleError(c, utils.CreateBadRequestError("未知的客户状态"))
		return
	}

	ctx := context.Background()
	if err := repository.SaveCustomer(ctx, &customer); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customerId": customer.ID,
		"name":       customer.Name,
	}, "保存客户成功")

	utils.SuccessResponse(c, customer, "保存客户成功")
}

// DeleteCustomer 删除客户及其名下记录
func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.HandleError(c, utils.CreateBadRequestError("客户ID不能为空"))
		return
	}

	ctx := context.Background()
	if _, err := repository.FindCustomerByID(ctx, id); err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := repository.DeleteCustomer(ctx, id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "删除客户成功")
}

// ToggleFavorite 切换客户的关注标记
func ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.HandleError(c, utils.CreateBadRequestError("客户ID不能为空"))
		return
	}

	ctx := context.Background()
	customer, err := repository.FindCustomerByID(ctx, id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := repository.SetCustomerFavorite(ctx, id, !customer.IsFavorite); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"isFavorite": !customer.IsFavorite}, "切换关注成功")
}
