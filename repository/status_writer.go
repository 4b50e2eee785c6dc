package repository

import (
	"context"

	"github.com/BerniceZTT/estate_crm/models"
)

// StatusWriter 把状态写入函数包装成 service.StatusWriter 的实现
type StatusWriter struct{}

// UpdateCustomerStatus 实现状态写入口
func (StatusWriter) UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error {
	return UpdateCustomerStatus(ctx, id, status)
}
