package models

import (
	"fmt"
)

// FilterKind 视图筛选器的封闭枚举
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterFavorites
	FilterLongTerm
	FilterMeetingToday
	FilterMeetingUpcoming
	FilterContactedToday
	FilterContactedYesterday
	FilterNeedsContact
	FilterStatus
)

// ViewFilter 视图筛选器选择，Kind 为 FilterStatus 时携带状态与可选的进展细分
type ViewFilter struct {
	Kind     FilterKind
	Status   CustomerStatus
	Progress CustomerProgress
}

// 具名筛选器的查询参数值
const (
	FilterNameAll                = "all"
	FilterNameFavorites          = "favorites"
	FilterNameLongTerm           = "long-term"
	FilterNameMeetingToday       = "meeting-today"
	FilterNameMeetingUpcoming    = "meeting-upcoming"
	FilterNameContactedToday     = "contacted-today"
	FilterNameContactedYesterday = "contacted-yesterday"
	FilterNameNeedsContact       = "needs-contact"
)

// ParseViewFilter 将查询参数解析为筛选器，未知名称返回错误。
// 进展细分只对状态类筛选器生效，其余筛选器下被忽略。
func ParseViewFilter(name, progress string) (ViewFilter, error) {
	if name == "" {
		name = FilterNameAll
	}

	switch name {
	case FilterNameAll:
		return ViewFilter{Kind: FilterAll}, nil
	case FilterNameFavorites:
		return ViewFilter{Kind: FilterFavorites}, nil
	case FilterNameLongTerm:
		return ViewFilter{Kind: FilterLongTerm}, nil
	case FilterNameMeetingToday:
		return ViewFilter{Kind: FilterMeetingToday}, nil
	case FilterNameMeetingUpcoming:
		return ViewFilter{Kind: FilterMeetingUpcoming}, nil
	case FilterNameContactedToday:
		return ViewFilter{Kind: FilterContactedToday}, nil
	case FilterNameContactedYesterday:
		return ViewFilter{Kind: FilterContactedYesterday}, nil
	case FilterNameNeedsContact:
		return ViewFilter{Kind: FilterNeedsContact}, nil
	}

	// 其余名称按客户状态处理
	status := CustomerStatus(name)
	if !IsValidStatus(status) {
		return ViewFilter{}, fmt.Errorf("未知的筛选器: %s", name)
	}
	return ViewFilter{
		Kind:     FilterStatus,
		Status:   status,
		Progress: CustomerProgress(progress),
	}, nil
}
