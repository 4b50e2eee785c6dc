package service

import (
	"sync"

	"github.com/BerniceZTT/estate_crm/models"
)

// Snapshot 三个集合的一次性不可变快照。
// 消费方只读，不允许原地修改切片内容。
type Snapshot struct {
	Customers  []models.Customer
	Activities []models.Activity
	Meetings   []models.Meeting
}

// SnapshotStore 最近一次已知快照的存放处。
// 每次订阅推送整体替换对应集合，绝不原地修改。
// 注意: 同一时刻观察到的三个集合之间不保证相互一致。
type SnapshotStore struct {
	mu         sync.RWMutex
	customers  []models.Customer
	activities []models.Activity
	meetings   []models.Meeting

	observerMu sync.Mutex
	nextID     int
	observers  map[int]func(Snapshot)
}

// NewSnapshotStore 创建快照存放处
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		observers: make(map[int]func(Snapshot)),
	}
}

var defaultStore = NewSnapshotStore()

// Store 返回全局快照存放处
func Store() *SnapshotStore {
	return defaultStore
}

// ReplaceCustomers 整体替换客户快照
func (s *SnapshotStore) ReplaceCustomers(customers []models.Customer) {
	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	s.notify()
}

// ReplaceActivities 整体替换活动快照
func (s *SnapshotStore) ReplaceActivities(activities []models.Activity) {
	s.mu.Lock()
	s.activities = activities
	s.mu.Unlock()
	s.notify()
}

// ReplaceMeetings 整体替换约访快照
func (s *SnapshotStore) ReplaceMeetings(meetings []models.Meeting) {
	s.mu.Lock()
	s.meetings = meetings
	s.mu.Unlock()
	s.notify()
}

// Current 返回当前快照三元组
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Customers:  s.customers,
		Activities: s.activities,
		Meetings:   s.meetings,
	}
}

// Subscribe 注册快照观察者，返回取消函数。
// 每次任一集合被替换后，观察者收到新的快照三元组。
func (s *SnapshotStore) Subscribe(fn func(Snapshot)) func() {
	s.observerMu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.observerMu.Unlock()

	return func() {
		s.observerMu.Lock()
		delete(s.observers, id)
		s.observerMu.Unlock()
	}
}

// notify 通知全部观察者
func (s *SnapshotStore) notify() {
	snap := s.Current()

	s.observerMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.observerMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
