package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerniceZTT/estate_crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatusWriter struct {
	mock.Mock
}

func (m *mockStatusWriter) UpdateCustomerStatus(ctx context.Context, id string, status models.CustomerStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestPendingPromotionsPastMeetingOnly(t *testing.T) {
	customers := []models.Customer{
		{ID: "past", Status: models.CustomerStatusNew},
		{ID: "today", Status: models.CustomerStatusNew},
		{ID: "future", Status: models.CustomerStatusNew},
	}
	meetings := []models.Meeting{
		{ID: "m1", CustomerID: "past", Date: day(-1)},
		{ID: "m2", CustomerID: "today", Date: day(0)},
		{ID: "m3", CustomerID: "future", Date: day(2)},
	}

	pending := PendingPromotions(customers, meetings, time.Now())
	require.Len(t, pending, 1)
	assert.Equal(t, "past", pending[0].ID)
}

func TestPendingPromotionsNeverDemotes(t *testing.T) {
	customers := []models.Customer{
		{ID: "a", Status: models.CustomerStatusInProgress},
		{ID: "b", Status: models.CustomerStatusContractComplete},
		{ID: "c", Status: models.CustomerStatusHold},
	}
	meetings := []models.Meeting{
		{ID: "m1", CustomerID: "a", Date: day(-3)},
		{ID: "m2", CustomerID: "b", Date: day(-3)},
		{ID: "m3", CustomerID: "c", Date: day(-3)},
	}

	assert.Empty(t, PendingPromotions(customers, meetings, time.Now()))
}

func TestRunIssuesStatusWriteForYesterdayMeeting(t *testing.T) {
	// 客户A: 状态 new，昨天有一次约访 → 写入 in-progress
	writer := new(mockStatusWriter)
	writer.On("UpdateCustomerStatus", mock.Anything, "A", models.CustomerStatusInProgress).Return(nil).Once()

	runner := NewPromotionRunner(writer)
	snap := Snapshot{
		Customers: []models.Customer{{ID: "A", Status: models.CustomerStatusNew}},
		Meetings:  []models.Meeting{{ID: "m", CustomerID: "A", Date: day(-1)}},
	}

	writes := runner.Run(context.Background(), snap)
	assert.Equal(t, 1, writes)
	writer.AssertExpectations(t)
}

func TestRunIsIdempotent(t *testing.T) {
	writer := new(mockStatusWriter)
	writer.On("UpdateCustomerStatus", mock.Anything, "A", models.CustomerStatusInProgress).Return(nil)

	runner := NewPromotionRunner(writer)
	snap := Snapshot{
		Customers: []models.Customer{{ID: "A", Status: models.CustomerStatusNew}},
		Meetings:  []models.Meeting{{ID: "m", CustomerID: "A", Date: day(-1)}},
	}

	// 同一快照上每次扫描至多一次写入
	assert.Equal(t, 1, runner.Run(context.Background(), snap))
	assert.Equal(t, 1, runner.Run(context.Background(), snap))

	// 晋升落盘后的快照到达，不再发出写入
	promoted := Snapshot{
		Customers: []models.Customer{{ID: "A", Status: models.CustomerStatusInProgress}},
		Meetings:  snap.Meetings,
	}
	assert.Equal(t, 0, runner.Run(context.Background(), promoted))
	writer.AssertNumberOfCalls(t, "UpdateCustomerStatus", 2)
}

func TestRunWriteFailureDoesNotBlockOthers(t *testing.T) {
	writer := new(mockStatusWriter)
	writer.On("UpdateCustomerStatus", mock.Anything, "A", models.CustomerStatusInProgress).
		Return(errors.New("write failed")).Once()
	writer.On("UpdateCustomerStatus", mock.Anything, "B", models.CustomerStatusInProgress).
		Return(nil).Once()

	runner := NewPromotionRunner(writer)
	snap := Snapshot{
		Customers: []models.Customer{
			{ID: "A", Status: models.CustomerStatusNew},
			{ID: "B", Status: models.CustomerStatusNew},
		},
		Meetings: []models.Meeting{
			{ID: "m1", CustomerID: "A", Date: day(-1)},
			{ID: "m2", CustomerID: "B", Date: day(-2)},
		},
	}

	writes := runner.Run(context.Background(), snap)
	assert.Equal(t, 1, writes)
	writer.AssertExpectations(t)
}

func TestRunSkipsEmptyCollections(t *testing.T) {
	writer := new(mockStatusWriter)
	runner := NewPromotionRunner(writer)

	assert.Equal(t, 0, runner.Run(context.Background(), Snapshot{
		Customers: []models.Customer{{ID: "A", Status: models.CustomerStatusNew}},
	}))
	assert.Equal(t, 0, runner.Run(context.Background(), Snapshot{
		Meetings: []models.Meeting{{ID: "m", CustomerID: "A", Date: day(-1)}},
	}))
	writer.AssertNotCalled(t, "UpdateCustomerStatus")
}

func TestWatchRunsOnSnapshotChange(t *testing.T) {
	writer := new(mockStatusWriter)
	writer.On("UpdateCustomerStatus", mock.Anything, "A", models.CustomerStatusInProgress).Return(nil)

	store := NewSnapshotStore()
	runner := NewPromotionRunner(writer)
	stop := runner.Watch(store)
	defer stop()

	// 只有客户快照时不扫描
	store.ReplaceCustomers([]models.Customer{{ID: "A", Status: models.CustomerStatusNew}})
	writer.AssertNotCalled(t, "UpdateCustomerStatus")

	// 约访快照到达后触发扫描
	store.ReplaceMeetings([]models.Meeting{{ID: "m", CustomerID: "A", Date: day(-1)}})
	writer.AssertNumberOfCalls(t, "UpdateCustomerStatus", 1)
}
