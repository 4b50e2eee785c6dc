package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	// 纯日期
	parsed, ok := ParseFlexibleDate("2024-08-01")
	require.True(t, ok)
	assert.Equal(t, "2024-08-01", parsed.Format("2006-01-02"))

	// 日期时间(datetime-local 输入格式)
	parsed, ok = ParseFlexibleDate("2024-08-01T14:30")
	require.True(t, ok)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	// RFC3339
	parsed, ok = ParseFlexibleDate("2024-08-01T14:30:00.000Z")
	require.True(t, ok)
	assert.Equal(t, "2024-08-01", parsed.UTC().Format("2006-01-02"))

	// 遗留的长日期串截断为日期部分
	parsed, ok = ParseFlexibleDate("2024-08-01 오후 기록")
	require.True(t, ok)
	assert.Equal(t, "2024-08-01", parsed.Format("2006-01-02"))
}

func TestParseFlexibleDateMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2024-13-99", "abc/def/ghi"} {
		_, ok := ParseFlexibleDate(input)
		assert.False(t, ok, "input: %q", input)
	}
}

func TestDayPredicates(t *testing.T) {
	now := time.Date(2025, 10, 16, 13, 0, 0, 0, time.Local)

	today := time.Date(2025, 10, 16, 23, 59, 0, 0, time.Local)
	yesterday := time.Date(2025, 10, 15, 0, 1, 0, 0, time.Local)
	tomorrow := time.Date(2025, 10, 17, 0, 0, 1, 0, time.Local)

	assert.True(t, IsToday(today, now))
	assert.False(t, IsToday(yesterday, now))

	assert.True(t, IsYesterday(yesterday, now))
	assert.False(t, IsYesterday(today, now))

	// 严格早于/晚于今天: 今天本身两者都不算
	assert.True(t, IsPastDay(yesterday, now))
	assert.False(t, IsPastDay(today, now))
	assert.True(t, IsFutureDay(tomorrow, now))
	assert.False(t, IsFutureDay(today, now))
}

func TestStartOfDay(t *testing.T) {
	instant := time.Date(2025, 10, 16, 18, 45, 30, 123, time.Local)
	start := StartOfDay(instant)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, instant.Day(), start.Day())
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 10, 16, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, 10, 16, 22, 0, 0, 0, time.Local)
	nextDay := time.Date(2025, 10, 17, 0, 0, 0, 0, time.Local)

	assert.True(t, SameCalendarDay(morning, evening))
	assert.False(t, SameCalendarDay(evening, nextDay))

	// 零点归一化与日历日相等在本地时间下一致
	assert.Equal(t, SameCalendarDay(morning, evening), SameDay(morning, evening))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("010-1234-5678"))
	assert.True(t, IsValidPhone("01012345678"))
	assert.False(t, IsValidPhone("02-123-4567"))
	assert.False(t, IsValidPhone("phone"))
}
