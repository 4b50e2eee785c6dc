package service

import (
	"time"

	"github.com/BerniceZTT/estate_crm/models"
	"github.com/BerniceZTT/estate_crm/utils"
)

// LastActivityDate 客户最近一次活动的日期。
// 没有任何活动(或日期全部无法解析)时第二个返回值为 false。
// 无法解析的日期视为无日期，不参与比较。
func LastActivityDate(activities []models.Activity, customerID string) (time.Time, bool) {
	var latest time.Time
	found := false

	for _, activity := range activities {
		if activity.CustomerID != customerID {
			continue
		}
		date, ok := utils.ParseFlexibleDate(activity.Date)
		if !ok {
			continue
		}
		if !found || date.After(latest) {
			latest = date
			found = true
		}
	}

	return latest, found
}

// HasMeetingOn 客户是否存在满足日期谓词的约访
func HasMeetingOn(meetings []models.Meeting, customerID string, pred func(time.Time) bool) bool {
	for _, meeting := range meetings {
		if meeting.CustomerID != customerID {
			continue
		}
		date, ok := utils.ParseFlexibleDate(meeting.Date)
		if !ok {
			continue
		}
		if pred(date) {
			return true
		}
	}
	return false
}

// NextMeeting 客户未来约访中日期最早的一个
func NextMeeting(meetings []models.Meeting, customerID string, now time.Time) (models.Meeting, bool) {
	return earliestMeeting(meetings, customerID, func(d time.Time) bool {
		return utils.IsFutureDay(d, now)
	})
}

// TodaysMeeting 客户今天约访中时间最早的一个
func TodaysMeeting(meetings []models.Meeting, customerID string, now time.Time) (models.Meeting, bool) {
	return earliestMeeting(meetings, customerID, func(d time.Time) bool {
		return utils.IsToday(d, now)
	})
}

// earliestMeeting 满足谓词的约访中日期最小的一个
func earliestMeeting(meetings []models.Meeting, customerID string, pred func(time.Time) bool) (models.Meeting, bool) {
	var best models.Meeting
	var bestDate time.Time
	found := false

	for _, meeting := range meetings {
		if meeting.CustomerID != customerID {
			continue
		}
		date, ok := utils.ParseFlexibleDate(meeting.Date)
		if !ok || !pred(date) {
			continue
		}
		if !found || date.Before(bestDate) {
			best = meeting
			bestDate = date
			found = true
		}
	}

	return best, found
}

// hasActivityOn 客户是否存在满足日期谓词的活动
func hasActivityOn(activities []models.Activity, customerID string, pred func(time.Time) bool) bool {
	for _, activity := range activities {
		if activity.CustomerID != customerID {
			continue
		}
		date, ok := utils.ParseFlexibleDate(activity.Date)
		if !ok {
			continue
		}
		if pred(date) {
			return true
		}
	}
	return false
}

// latestActivityOnDay 客户在指定日历日内时间最晚的活动。
// 这里按日历日相等判断，与筛选谓词的零点归一化判断各自保留。
func latestActivityOnDay(activities []models.Activity, customerID string, day time.Time) (time.Time, bool) {
	var latest time.Time
	found := false

	for _, activity := range activities {
		if activity.CustomerID != customerID {
			continue
		}
		date, ok := utils.ParseFlexibleDate(activity.Date)
		if !ok || !utils.SameCalendarDay(date, day) {
			continue
		}
		if !found || date.After(latest) {
			latest = date
			found = true
		}
	}

	return latest, found
}
