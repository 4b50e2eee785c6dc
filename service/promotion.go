package service

import (
	"context"
	"time"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/utils"
)

// StatusWriter 客户状态写入口，由存储层实现
type StatusWriter interface {
	UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error
}

// PendingPromotions 扫描快照，返回待晋升的客户列表。
// 规则: 状态为 new 且存在过去约访的客户晋升为 in-progress。
// 只依赖传入的两个集合，不产生副作用。
func PendingPromotions(customers []models.Customer, meetings []models.Meeting, now time.Time) []models.Customer {
	var pending []models.Customer
	for _, customer := range customers {
		if customer.Status != models.CustomerStatusNew {
			continue
		}
		if HasMeetingOn(meetings, customer.ID, func(d time.Time) bool {
			return utils.IsPastDay(d, now)
		}) {
			pending = append(pending, customer)
		}
	}
	return pending
}

// PromotionRunner 自动晋升规则的执行器
type PromotionRunner struct {
	writer StatusWriter
}

// NewPromotionRunner 创建晋升执行器
func NewPromotionRunner(writer StatusWriter) *PromotionRunner {
	return &PromotionRunner{writer: writer}
}

// Run 在一份快照上执行晋升扫描，返回发出的写入次数。
// 客户或约访集合为空时不做任何事。
// 每个客户的写入相互独立，单个失败不阻塞其余客户。
// 写入只修改 status 字段，进展子状态保持不变；
// 内存中的快照不直接修改，晋升结果经订阅推送异步可见。
func (r *PromotionRunner) Run(ctx context.Context, snap Snapshot) int {
	if len(snap.Customers) == 0 || len(snap.Meetings) == 0 {
		return 0
	}

	writes := 0
	for _, customer := range PendingPromotions(snap.Customers, snap.Meetings, time.Now()) {
		err := r.writer.UpdateCustomerStatus(ctx, customer.ID, models.CustomerStatusInProgress)
		if err != nil {
			utils.LogError(err, map[string]interface{}{
				"customerId": customer.ID,
			}, "自动晋升客户状态失败")
			continue
		}

		writes++
		utils.AutoPromotions.Inc()
		utils.LogInfo(map[string]interface{}{
			"customerId": customer.ID,
			"name":       customer.Name,
		}, "客户因过去约访自动晋升为进行中")
	}
	return writes
}

// Watch 把晋升规则挂到快照流上: 每次客户或约访快照变化后重新扫描。
// 返回取消函数。
func (r *PromotionRunner) Watch(store *SnapshotStore) func() {
	return store.Subscribe(func(snap Snapshot) {
		r.Run(context.Background(), snap)
	})
}

// ScheduleDailyTaskAt 每天指定时间执行任务
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			duration := next.Sub(now)
			time.Sleep(duration)
			task()
		}
	}()
}

// StartDailyRescan 每天零点后重新扫描一次。
// 日期翻转本身就能让约访变成过去约访，快照不变也要晋升。
func (r *PromotionRunner) StartDailyRescan(store *SnapshotStore) {
	ScheduleDailyTaskAt(0, 5, 0, func() {
		utils.LogInfo(nil, "开始每日自动晋升扫描")
		r.Run(context.Background(), store.Current())
	})
}
