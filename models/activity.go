package models

import (
	"time"
)

// ActivityImage 活动附带的图片引用
type ActivityImage struct {
	ID       string `json:"id" bson:"id"`
	Filename string `json:"filename" bson:"filename"`
	Ref      string `json:"ref" bson:"ref"` // 二进制存储的不透明引用
}

// FollowUp 活动创建后追加的后续记录
type FollowUp struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Date      string    `json:"date" bson:"date"` // 展示用时间戳
}

// Activity 客户活动记录(电话、短信、到访等)
type Activity struct {
	ID         string          `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID string          `json:"customerId" bson:"customerId"`
	Date       string          `json:"date" bson:"date"` // 日历日期, "YYYY-MM-DD"
	Content    string          `json:"content" bson:"content"`
	Images     []ActivityImage `json:"images,omitempty" bson:"images"`
	FollowUps  []FollowUp      `json:"followUps,omitempty" bson:"followUps"`
}

// NormalizeDate 将遗留的长日期串截断为 10 位日期部分
func (a *Activity) NormalizeDate() {
	if len(a.Date) > 10 {
		a.Date = a.Date[:10]
	}
}

// CreateFollowUpInput 追加后续记录的输入数据
type CreateFollowUpInput struct {
	Content string `json:"content" binding:"required"`
}

// UpdateFollowUpInput 修改后续记录的输入数据
type UpdateFollowUpInput struct {
	Content string `json:"content" binding:"required"`
}
