package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 运行指标
var (
	// SnapshotPushes 各集合收到的快照推送次数
	SnapshotPushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_snapshot_pushes_total",
			Help: "Number of full collection snapshots pushed by the storage layer",
		},
		[]string{"collection"},
	)

	// AutoPromotions 自动晋升规则发出的状态写入次数
	AutoPromotions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_auto_promotions_total",
			Help: "Number of status writes issued by the auto promotion rule",
		},
	)

	// StorageErrors 存储层错误次数
	StorageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_storage_errors_total",
			Help: "Number of storage operation failures",
		},
		[]string{"operation"},
	)
)

// RegisterMetrics 注册全部指标
func RegisterMetrics() {
	prometheus.MustRegister(SnapshotPushes, AutoPromotions, StorageErrors)
}
