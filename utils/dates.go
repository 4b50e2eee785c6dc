package utils

import (
	"strings"
	"time"
)

// 可接受的日期/日期时间格式
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// ParseFlexibleDate 解析日期或日期时间串。
// 解析失败视为"无日期"，调用方应把该记录排除在日期谓词之外。
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	// 纯日期，遗留的长日期串截断为前10位日期部分
	if len(s) >= 10 {
		if t, err := time.ParseInLocation(dateLayout, s[:10], time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// StartOfDay 归一化到当天本地时间零点
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay 零点归一化后判断两个时刻是否同一天
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// SameCalendarDay 按日历日的年月日相等判断，不经过零点归一化
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// IsToday 是否为今天
func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsYesterday 是否为昨天
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, now.AddDate(0, 0, -1))
}

// IsPastDay 是否严格早于今天
func IsPastDay(t, now time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(now))
}

// IsFutureDay 是否严格晚于今天
func IsFutureDay(t, now time.Time) bool {
	return StartOfDay(t).After(StartOfDay(now))
}
