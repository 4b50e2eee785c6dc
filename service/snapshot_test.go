package service

import (
	"testing"

	"github.com/BerniceZTT/estate_crm/models"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotStoreReplaceWholesale(t *testing.T) {
	store := NewSnapshotStore()

	assert.Empty(t, store.Current().Customers)

	first := []models.Customer{{ID: "a"}, {ID: "b"}}
	store.ReplaceCustomers(first)
	assert.Equal(t, first, store.Current().Customers)

	// 整体替换，而非合并
	second := []models.Customer{{ID: "c"}}
	store.ReplaceCustomers(second)
	assert.Equal(t, second, store.Current().Customers)

	// 其他集合的替换不影响客户快照
	store.ReplaceMeetings([]models.Meeting{{ID: "m"}})
	snap := store.Current()
	assert.Equal(t, second, snap.Customers)
	assert.Len(t, snap.Meetings, 1)
}

func TestSnapshotStoreObservers(t *testing.T) {
	store := NewSnapshotStore()

	var seen []Snapshot
	unsubscribe := store.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap)
	})

	store.ReplaceCustomers([]models.Customer{{ID: "a"}})
	store.ReplaceActivities([]models.Activity{{ID: "act"}})
	assert.Len(t, seen, 2)

	// 观察者收到的是替换后的完整三元组
	assert.Len(t, seen[1].Customers, 1)
	assert.Len(t, seen[1].Activities, 1)

	// 取消订阅后不再收到回调
	unsubscribe()
	store.ReplaceMeetings([]models.Meeting{{ID: "m"}})
	assert.Len(t, seen, 2)
}

func TestSnapshotStoreMultipleObservers(t *testing.T) {
	store := NewSnapshotStore()

	calls1, calls2 := 0, 0
	stop1 := store.Subscribe(func(Snapshot) { calls1++ })
	defer stop1()
	stop2 := store.Subscribe(func(Snapshot) { calls2++ })

	store.ReplaceCustomers(nil)
	assert.Equal(t, 1, calls1)
	assert.Equal(t, 1, calls2)

	stop2()
	store.ReplaceCustomers(nil)
	assert.Equal(t, 2, calls1)
	assert.Equal(t, 1, calls2)
}
