package models

// BackupData 备份/恢复的JSON结构
type BackupData struct {
	Customers  []Customer `json:"customers"`
	Activities []Activity `json:"activities"`
	Meetings   []Meeting  `json:"meetings"`
}
