package models

import (
	"time"
)

// CustomerStatus 客户生命周期状态枚举
type CustomerStatus string

const (
	CustomerStatusNew              CustomerStatus = "new"               // 新规客户
	CustomerStatusInProgress       CustomerStatus = "in-progress"       // 进行中
	CustomerStatusLongTerm         CustomerStatus = "long-term"         // 长期管理客户
	CustomerStatusHold             CustomerStatus = "hold"              // 保留
	CustomerStatusContractComplete CustomerStatus = "contract-complete" // 签约完成
)

// CustomerProgress 客户进展子状态枚举，仅在 new / in-progress 状态下有效
type CustomerProgress string

const (
	CustomerProgressInitialConsult CustomerProgress = "initial-consult" // 初次咨询
	CustomerProgressPropertyTour   CustomerProgress = "property-tour"   // 看房中
	CustomerProgressContractReview CustomerProgress = "contract-review" // 合同确认
	CustomerProgressWaiting        CustomerProgress = "waiting"         // 等待回复
)

// AllCustomerStatuses 全部合法的客户状态
var AllCustomerStatuses = []CustomerStatus{
	CustomerStatusNew,
	CustomerStatusInProgress,
	CustomerStatusLongTerm,
	CustomerStatusHold,
	CustomerStatusContractComplete,
}

// IsValidStatus 检查状态值是否合法
func IsValidStatus(s CustomerStatus) bool {
	for _, status := range AllCustomerStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Customer 客户模型
type Customer struct {
	ID                 string           `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string           `json:"name" bson:"name"`
	Phone              string           `json:"phone" bson:"phone"`
	Source             string           `json:"source" bson:"source"`
	PropertyType       string           `json:"propertyType" bson:"propertyType"`
	PreferredArea      string           `json:"preferredArea" bson:"preferredArea"`
	HopefulDeposit     int64            `json:"hopefulDeposit" bson:"hopefulDeposit"`
	HopefulMonthlyRent int64            `json:"hopefulMonthlyRent" bson:"hopefulMonthlyRent"`
	MoveInDate         string           `json:"moveInDate" bson:"moveInDate"`
	Memo               string           `json:"memo" bson:"memo"`
	Status             CustomerStatus   `json:"status" bson:"status"`
	Progress           CustomerProgress `json:"progress,omitempty" bson:"progress"`
	IsFavorite         bool             `json:"isFavorite" bson:"isFavorite"`
	CreatedAt          time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// HasProgress 当前状态是否允许携带进展子状态
func (c *Customer) HasProgress() bool {
	return c.Status == CustomerStatusNew || c.Status == CustomerStatusInProgress
}

// Normalize 保证客户不变式: 进展子状态只在 new / in-progress 下保留，金额非负
func (c *Customer) Normalize() {
	if c.Status == "" {
		c.Status = CustomerStatusNew
	}
	if !c.HasProgress() {
		c.Progress = ""
	}
	if c.HopefulDeposit < 0 {
		c.HopefulDeposit = 0
	}
	if c.HopefulMonthlyRent < 0 {
		c.HopefulMonthlyRent = 0
	}
}
