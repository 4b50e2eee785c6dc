package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClearsProgressOutsideActiveStatuses(t *testing.T) {
	// 保留状态下进展子状态必须为空
	for _, status := range []CustomerStatus{CustomerStatusHold, CustomerStatusLongTerm, CustomerStatusContractComplete} {
		customer := Customer{Status: status, Progress: CustomerProgressWaiting}
		customer.Normalize()
		assert.Empty(t, customer.Progress, string(status))
	}

	// new / in-progress 保留进展子状态
	for _, status := range []CustomerStatus{CustomerStatusNew, CustomerStatusInProgress} {
		customer := Customer{Status: status, Progress: CustomerProgressWaiting}
		customer.Normalize()
		assert.Equal(t, CustomerProgressWaiting, customer.Progress, string(status))
	}
}

func TestNormalizeDefaults(t *testing.T) {
	customer := Customer{HopefulDeposit: -100, HopefulMonthlyRent: -1}
	customer.Normalize()

	assert.Equal(t, CustomerStatusNew, customer.Status)
	assert.Equal(t, int64(0), customer.HopefulDeposit)
	assert.Equal(t, int64(0), customer.HopefulMonthlyRent)
}

func TestActivityNormalizeDateTruncatesLegacy(t *testing.T) {
	activity := Activity{Date: "2024-08-01T14:23:00.000Z"}
	activity.NormalizeDate()
	assert.Equal(t, "2024-08-01", activity.Date)

	activity = Activity{Date: "2024-08-01"}
	activity.NormalizeDate()
	assert.Equal(t, "2024-08-01", activity.Date)
}

func TestBackupRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	backup := BackupData{
		Customers: []Customer{{
			ID:                 "cust-1",
			Name:               "홍길동",
			Phone:              "010-1234-5678",
			Source:             "블로그",
			PropertyType:       "월세",
			PreferredArea:      "강남구 역삼동",
			HopefulDeposit:     1000,
			HopefulMonthlyRent: 50,
			MoveInDate:         "2025-11-01",
			Memo:               "빠른 입주 희망",
			Status:             CustomerStatusInProgress,
			Progress:           CustomerProgressPropertyTour,
			IsFavorite:         true,
			CreatedAt:          createdAt,
			UpdatedAt:          createdAt,
		}},
		Activities: []Activity{{
			ID:         "act-1",
			CustomerID: "cust-1",
			Date:       "2025-09-02",
			Content:    "전화 상담",
			FollowUps: []FollowUp{{
				ID:        "fu-1",
				Content:   "문자 회신 받음",
				CreatedAt: createdAt,
				Date:      createdAt.Format(time.RFC3339),
			}},
		}},
		Meetings: []Meeting{{
			ID:         "mtg-1",
			CustomerID: "cust-1",
			Date:       "2025-09-10T14:00",
			Details:    "역삼동 매물 방문",
		}},
	}

	raw, err := json.Marshal(backup)
	require.NoError(t, err)

	var restored BackupData
	require.NoError(t, json.Unmarshal(raw, &restored))

	// 字段值与标识完全一致
	assert.Equal(t, backup, restored)
}
