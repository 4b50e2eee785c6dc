package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setDocument 将记录转换为 $set 文档，标识字段单独处理
func setDocument(record interface{}) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("序列化记录失败: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("反序列化记录失败: %w", err)
	}

	delete(doc, "_id")
	return doc, nil
}

// upsertByID 按标识合并写入一条记录，标识为空时先分配
func upsertByID(ctx context.Context, collName string, id string, record interface{}) error {
	doc, err := setDocument(record)
	if err != nil {
		return err
	}

	opts := options.Update().SetUpsert(true)
	_, err = ExecuteDbOperation(func() (interface{}, error) {
		return Collection(collName).UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": doc},
			opts,
		)
	}, 3)
	if err != nil {
		utils.StorageErrors.WithLabelValues("save").Inc()
		return err
	}

	utils.LogDbOperation("upsert", collName, bson.M{"_id": id}, nil)
	return nil
}

// SaveCustomer 保存客户，标识为空时分配新标识
func SaveCustomer(ctx context.Context, customer *models.Customer) error {
	customer.Normalize()
	if customer.ID == "" {
		customer.ID = primitive.NewObjectID().Hex()
		if customer.CreatedAt.IsZero() {
			customer.CreatedAt = time.Now()
		}
	}
	customer.UpdatedAt = time.Now()
	return upsertByID(ctx, CustomersCollection, customer.ID, customer)
}

// FindCustomerByID 按标识查找客户
func FindCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := Collection(CustomersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("客户")
		}
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomerStatus 只更新客户状态，其余字段保持原样(部分字段合并写入)
func UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error {
	_, err := ExecuteDbOperation(func() (interface{}, error) {
		return Collection(CustomersCollection).UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"status":    status,
				"updatedAt": time.Now(),
			}},
		)
	}, 3)
	if err != nil {
		utils.StorageErrors.WithLabelValues("updateStatus").Inc()
	}
	return err
}

// SetCustomerFavorite 设置客户的关注标记
func SetCustomerFavorite(ctx context.Context, id string, favorite bool) error {
	_, err := ExecuteDbOperation(func() (interface{}, error) {
		return Collection(CustomersCollection).UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"isFavorite": favorite,
				"updatedAt":  time.Now(),
			}},
		)
	}, 3)
	if err != nil {
		utils.StorageErrors.WithLabelValues("setFavorite").Inc()
	}
	return err
}

// DeleteCustomer 删除客户及其名下的活动与约访
func DeleteCustomer(ctx context.Context, id string) error {
	if _, err := Collection(CustomersCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		utils.StorageErrors.WithLabelValues("delete").Inc()
		return err
	}

	// 级联删除从属记录
	if _, err := Collection(ActivitiesCollection).DeleteMany(ctx, bson.M{"customerId": id}); err != nil {
		utils.StorageErrors.WithLabelValues("delete").Inc()
		return err
	}
	if _, err := Collection(MeetingsCollection).DeleteMany(ctx, bson.M{"customerId": id}); err != nil {
		utils.StorageErrors.WithLabelValues("delete").Inc()
		return err
	}

	utils.LogDbOperation("delete", CustomersCollection, bson.M{"_id": id}, nil)
	return nil
}

// SaveActivity 保存活动，标识为空时分配新标识
func SaveActivity(ctx context.Context, activity *models.Activity) error {
	activity.NormalizeDate()
	if activity.ID == "" {
		activity.ID = primitive.NewObjectID().Hex()
	}
	return upsertByID(ctx, ActivitiesCollection, activity.ID, activity)
}

// FindActivityByID 按标识查找活动
func FindActivityByID(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	err := Collection(ActivitiesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("活动记录")
		}
		return nil, err
	}
	return &activity, nil
}

// DeleteActivity 删除活动
func DeleteActivity(ctx context.Context, id string) error {
	_, err := Collection(ActivitiesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.StorageErrors.WithLabelValues("delete").Inc()
	}
	return err
}

// SaveMeeting 保存约访，标识为空时分配新标识
func SaveMeeting(ctx context.Context, meeting *models.Meeting) error {
	if meeting.ID == "" {
		meeting.ID = primitive.NewObjectID().Hex()
	}
	return upsertByID(ctx, MeetingsCollection, meeting.ID, meeting)
}

// DeleteMeeting 删除约访
func DeleteMeeting(ctx context.Context, id string) error {
	_, err := Collection(MeetingsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.StorageErrors.WithLabelValues("delete").Inc()
	}
	return err
}

// bulkUpsert 批量按标识合并写入，用于备份恢复
func bulkUpsert(ctx context.Context, collName string, ids []string, records []interface{}) error {
	if len(records) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(records))
	for i, record := range records {
		doc, err := setDocument(record)
		if err != nil {
			return err
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": ids[i]}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	_, err := ExecuteDbOperation(func() (interface{}, error) {
		return Collection(collName).BulkWrite(ctx, writes)
	}, 3)
	if err != nil {
		utils.StorageErrors.WithLabelValues("saveMany").Inc()
		return err
	}

	utils.LogDbOperation("bulkUpsert", collName, bson.M{"count": len(writes)}, nil)
	return nil
}

// SaveManyCustomers 批量保存客户，保留原有标识
func SaveManyCustomers(ctx context.Context, customers []models.Customer) error {
	ids := make([]string, len(customers))
	records := make([]interface{}, len(customers))
	for i := range customers {
		customers[i].Normalize()
		if customers[i].ID == "" {
			customers[i].ID = primitive.NewObjectID().Hex()
		}
		ids[i] = customers[i].ID
		records[i] = customers[i]
	}
	return bulkUpsert(ctx, CustomersCollection, ids, records)
}

// SaveManyActivities 批量保存活动，保留原有标识
func SaveManyActivities(ctx context.Context, activities []models.Activity) error {
	ids := make([]string, len(activities))
	records := make([]interface{}, len(activities))
	for i := range activities {
		activities[i].NormalizeDate()
		if activities[i].ID == "" {
			activities[i].ID = primitive.NewObjectID().Hex()
		}
		ids[i] = activities[i].ID
		records[i] = activities[i]
	}
	return bulkUpsert(ctx, ActivitiesCollection, ids, records)
}

// SaveManyMeetings 批量保存约访，保留原有标识
func SaveManyMeetings(ctx context.Context, meetings []models.Meeting) error {
	ids := make([]string, len(meetings))
	records := make([]interface{}, len(meetings))
	for i := range meetings {
		if meetings[i].ID == "" {
			meetings[i].ID = primitive.NewObjectID().Hex()
		}
		ids[i] = meetings[i].ID
		records[i] = meetings[i]
	}
	return bulkUpsert(ctx, MeetingsCollection, ids, records)
}

// FetchAllCustomers 读取全部客户
func FetchAllCustomers(ctx context.Context) ([]models.Customer, error) {
	cursor, err := Collection(CustomersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FetchAllActivities 读取全部活动
func FetchAllActivities(ctx context.Context) ([]models.Activity, error) {
	cursor, err := Collection(ActivitiesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// FetchAllMeetings 读取全部约访
func FetchAllMeetings(ctx context.Context) ([]models.Meeting, error) {
	cursor, err := Collection(MeetingsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
