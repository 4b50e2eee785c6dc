package models

// Meeting 客户约访记录
type Meeting struct {
	ID         string `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID string `json:"customerId" bson:"customerId"`
	Date       string `json:"date" bson:"date"` // 日期或日期时间串
	Details    string `json:"details" bson:"details"`
}
