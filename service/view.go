package service

import (
	"sort"
	"strings"
	"time"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/utils"
)

// Compose 视图合成: 在一份快照上应用筛选谓词，再应用匹配的排序策略。
// 纯函数，不修改输入，相同输入产生相同输出。
func Compose(snap Snapshot, filter models.ViewFilter, now time.Time) []models.Customer {
	filtered := applyFilter(snap, filter, now)
	applySort(filtered, snap, filter, now)
	return filtered
}

// applyFilter 应用筛选谓词，保持源集合中的相对顺序(稳定筛选)
func applyFilter(snap Snapshot, filter models.ViewFilter, now time.Time) []models.Customer {
	result := make([]models.Customer, 0, len(snap.Customers))
	for _, customer := range snap.Customers {
		if matchesFilter(customer, snap, filter, now) {
			result = append(result, customer)
		}
	}
	return result
}

// matchesFilter 单个客户是否满足筛选谓词
func matchesFilter(customer models.Customer, snap Snapshot, filter models.ViewFilter, now time.Time) bool {
	switch filter.Kind {
	case models.FilterAll:
		return true

	case models.FilterFavorites:
		return customer.IsFavorite

	case models.FilterLongTerm:
		return customer.Status == models.CustomerStatusLongTerm

	case models.FilterMeetingToday:
		return HasMeetingOn(snap.Meetings, customer.ID, func(d time.Time) bool {
			return utils.IsToday(d, now)
		})

	case models.FilterMeetingUpcoming:
		return HasMeetingOn(snap.Meetings, customer.ID, func(d time.Time) bool {
			return utils.IsFutureDay(d, now)
		})

	case models.FilterContactedToday:
		return hasActivityOn(snap.Activities, customer.ID, func(d time.Time) bool {
			return utils.IsToday(d, now)
		})

	case models.FilterContactedYesterday:
		return hasActivityOn(snap.Activities, customer.ID, func(d time.Time) bool {
			return utils.IsYesterday(d, now)
		})

	case models.FilterNeedsContact:
		// 保留状态的客户不出现在待联络列表
		if customer.Status == models.CustomerStatusHold {
			return false
		}
		return !hasActivityOn(snap.Activities, customer.ID, func(d time.Time) bool {
			return utils.IsToday(d, now) || utils.IsYesterday(d, now)
		})

	case models.FilterStatus:
		if customer.Status != filter.Status {
			return false
		}
		return filter.Progress == "" || customer.Progress == filter.Progress
	}

	return false
}

// applySort 对筛选结果应用排序策略。
// 只有六个筛选器有排序策略，其余保持筛选后的顺序。全部排序为稳定排序。
func applySort(customers []models.Customer, snap Snapshot, filter models.ViewFilter, now time.Time) {
	switch filter.Kind {
	case models.FilterMeetingToday:
		// 今天的约访按时间升序，无约访者排在最后
		sortByMeeting(customers, func(id string) (time.Time, bool) {
			meeting, ok := TodaysMeeting(snap.Meetings, id, now)
			if !ok {
				return time.Time{}, false
			}
			date, parsed := utils.ParseFlexibleDate(meeting.Date)
			return date, parsed
		})

	case models.FilterMeetingUpcoming:
		// 最近的未来约访日期升序
		sortByMeeting(customers, func(id string) (time.Time, bool) {
			meeting, ok := NextMeeting(snap.Meetings, id, now)
			if !ok {
				return time.Time{}, false
			}
			date, parsed := utils.ParseFlexibleDate(meeting.Date)
			return date, parsed
		})

	case models.FilterContactedToday:
		sortByLatestActivityDesc(customers, snap.Activities, now)

	case models.FilterContactedYesterday:
		sortByLatestActivityDesc(customers, snap.Activities, now.AddDate(0, 0, -1))

	case models.FilterNeedsContact:
		// 最后活动日由远及近，从未联络过的客户排在最后
		sort.SliceStable(customers, func(i, j int) bool {
			aDate, aOK := LastActivityDate(snap.Activities, customers[i].ID)
			bDate, bOK := LastActivityDate(snap.Activities, customers[j].ID)
			if !aOK {
				return false
			}
			if !bOK {
				return true
			}
			return aDate.Before(bDate)
		})

	case models.FilterAll, models.FilterFavorites, models.FilterLongTerm, models.FilterStatus:
		// 保持源集合顺序
	}
}

// sortByMeeting 有约访者在前，按约访时间升序
func sortByMeeting(customers []models.Customer, meetingDate func(id string) (time.Time, bool)) {
	sort.SliceStable(customers, func(i, j int) bool {
		aDate, aOK := meetingDate(customers[i].ID)
		bDate, bOK := meetingDate(customers[j].ID)
		if !aOK {
			return false
		}
		if !bOK {
			return true
		}
		return aDate.Before(bDate)
	})
}

// sortByLatestActivityDesc 有当日活动者在前，按最近活动时间降序
func sortByLatestActivityDesc(customers []models.Customer, activities []models.Activity, day time.Time) {
	sort.SliceStable(customers, func(i, j int) bool {
		aDate, aOK := latestActivityOnDay(activities, customers[i].ID, day)
		bDate, bOK := latestActivityOnDay(activities, customers[j].ID, day)
		if !aOK {
			return false
		}
		if !bOK {
			return true
		}
		return aDate.After(bDate)
	})
}

// SearchCustomers 按姓名或电话过滤，保持顺序
func SearchCustomers(customers []models.Customer, term string) []models.Customer {
	if term == "" {
		return customers
	}

	lower := strings.ToLower(term)
	result := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		if strings.Contains(strings.ToLower(customer.Name), lower) ||
			strings.Contains(customer.Phone, term) {
			result = append(result, customer)
		}
	}
	return result
}

// SortByColumn 表格列排序，关注客户始终排在最前。
// 空值排在最后，与排序方向无关。
func SortByColumn(customers []models.Customer, key string, desc bool) []models.Customer {
	sorted := make([]models.Customer, len(customers))
	copy(sorted, customers)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		// 关注客户优先
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}

		switch key {
		case "createdAt":
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)

		case "hopefulDeposit":
			if desc {
				return a.HopefulDeposit > b.HopefulDeposit
			}
			return a.HopefulDeposit < b.HopefulDeposit

		case "hopefulMonthlyRent":
			if desc {
				return a.HopefulMonthlyRent > b.HopefulMonthlyRent
			}
			return a.HopefulMonthlyRent < b.HopefulMonthlyRent

		case "name":
			return lessString(a.Name, b.Name, desc)

		case "moveInDate":
			return lessString(a.MoveInDate, b.MoveInDate, desc)
		}

		return false
	})

	return sorted
}

// lessString 字符串列比较，空串排在最后
func lessString(a, b string, desc bool) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	if desc {
		return a > b
	}
	return a < b
}
