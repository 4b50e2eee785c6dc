package repository

import (
	"context"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Unsubscribe 取消订阅，调用后不再产生回调
type Unsubscribe func()

// SubscribeCustomers 订阅客户集合，每次变更推送完整集合快照
func SubscribeCustomers(onSnapshot func([]models.Customer)) Unsubscribe {
	return watchCollection(CustomersCollection, func(ctx context.Context) error {
		customers, err := FetchAllCustomers(ctx)
		if err != nil {
			return err
		}
		onSnapshot(customers)
		return nil
	})
}

// SubscribeActivities 订阅活动集合，每次变更推送完整集合快照
func SubscribeActivities(onSnapshot func([]models.Activity)) Unsubscribe {
	return watchCollection(ActivitiesCollection, func(ctx context.Context) error {
		activities, err := FetchAllActivities(ctx)
		if err != nil {
			return err
		}
		onSnapshot(activities)
		return nil
	})
}

// SubscribeMeetings 订阅约访集合，每次变更推送完整集合快照
func SubscribeMeetings(onSnapshot func([]models.Meeting)) Unsubscribe {
	return watchCollection(MeetingsCollection, func(ctx context.Context) error {
		meetings, err := FetchAllMeetings(ctx)
		if err != nil {
			return err
		}
		onSnapshot(meetings)
		return nil
	})
}

// watchCollection 基于变更流监听集合，每次事件后推送完整快照。
// 返回的取消函数无条件停止推送。订阅失败对该订阅是终止态，只记录日志。
func watchCollection(collName string, push func(context.Context) error) Unsubscribe {
	watchCtx, cancel := context.WithCancel(context.Background())

	go func() {
		// 初始快照
		if err := push(watchCtx); err != nil {
			if watchCtx.Err() == nil {
				utils.LogError(err, map[string]interface{}{"collection": collName}, "推送初始快照失败")
				utils.StorageErrors.WithLabelValues("subscribe").Inc()
			}
		} else {
			utils.SnapshotPushes.WithLabelValues(collName).Inc()
		}

		stream, err := Collection(collName).Watch(watchCtx, mongo.Pipeline{})
		if err != nil {
			if watchCtx.Err() == nil {
				utils.LogError(err, map[string]interface{}{"collection": collName}, "建立变更流失败，订阅终止")
				utils.StorageErrors.WithLabelValues("subscribe").Inc()
			}
			return
		}
		defer stream.Close(context.Background())

		for stream.Next(watchCtx) {
			if err := push(watchCtx); err != nil {
				if watchCtx.Err() != nil {
					return
				}
				utils.LogError(err, map[string]interface{}{"collection": collName}, "推送快照失败")
				utils.StorageErrors.WithLabelValues("subscribe").Inc()
				continue
			}
			utils.SnapshotPushes.WithLabelValues(collName).Inc()
		}

		if err := stream.Err(); err != nil && watchCtx.Err() == nil {
			utils.LogError(err, map[string]interface{}{"collection": collName}, "变更流中断，订阅终止")
			utils.StorageErrors.WithLabelValues("subscribe").Inc()
		}
	}()

	return func() { cancel() }
}
