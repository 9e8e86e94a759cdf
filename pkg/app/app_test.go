package app

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"tableflip.dev/backlog/pkg/catalog"
)

// memoryPersistence is an in-memory store fake used across the package
// tests. It deep-copies on the way in and out, like the real adapter does by
// virtue of JSON round-tripping.
type memoryPersistence struct {
	mu       sync.Mutex
	items    map[catalog.Kind][]catalog.Item
	activity []catalog.Activity
	hasLog   bool
	saves    int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{items: make(map[catalog.Kind][]catalog.Item)}
}

func (m *memoryPersistence) Items(kind catalog.Kind) ([]catalog.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.items[kind]
	if !ok {
		return nil, false
	}
	return append([]catalog.Item(nil), items...), true
}

func (m *memoryPersistence) SaveItems(kind catalog.Kind, items []catalog.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[kind] = append([]catalog.Item(nil), items...)
	m.saves++
	return nil
}

func (m *memoryPersistence) Activity() ([]catalog.Activity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasLog {
		return nil, false
	}
	return append([]catalog.Activity(nil), m.activity...), true
}

func (m *memoryPersistence) SaveActivity(entries []catalog.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activity = append([]catalog.Activity(nil), entries...)
	m.hasLog = true
	m.saves++
	return nil
}

// manualScheduler queues callbacks until the test fires them, standing in
// for the animation timer.
type manualScheduler struct {
	mu     sync.Mutex
	queued []func()
}

func (m *manualScheduler) Schedule(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued = append(m.queued, fn)
	return func() {}
}

// Fire runs every queued callback once.
func (m *manualScheduler) Fire() {
	m.mu.Lock()
	queued := m.queued
	m.queued = nil
	m.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

func (m *manualScheduler) QueuedLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queued)
}

// newTestService builds a Service over fresh seed data with deterministic
// ids, clock, and toast selection.
func newTestService() (*Service, *memoryPersistence, *manualScheduler) {
	mp := newMemoryPersistence()
	ms := &manualScheduler{}
	svc := New(mp, WithScheduler(ms), WithRandSource(rand.NewSource(1)))

	itemSeq := 0
	svc.newItemID = func() string {
		itemSeq++
		return fmt.Sprintf("item-%d", itemSeq)
	}
	activitySeq := 0
	svc.newActivityID = func() string {
		activitySeq++
		return fmt.Sprintf("act-%d", activitySeq)
	}
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc, mp, ms
}
