package teaui

import (
	"strings"
	"sync"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/backlog/pkg/app"
	"tableflip.dev/backlog/pkg/catalog"
)

// fakePersistence is an in-memory store for driving the UI in tests.
type fakePersistence struct {
	mu       sync.Mutex
	items    map[catalog.Kind][]catalog.Item
	activity []catalog.Activity
	hasLog   bool
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{items: make(map[catalog.Kind][]catalog.Item)}
}

func (f *fakePersistence) Items(kind catalog.Kind) ([]catalog.Item, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.items[kind]
	if !ok {
		return nil, false
	}
	return append([]catalog.Item(nil), items...), true
}

func (f *fakePersistence) SaveItems(kind catalog.Kind, items []catalog.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[kind] = append([]catalog.Item(nil), items...)
	return nil
}

func (f *fakePersistence) Activity() ([]catalog.Activity, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasLog {
		return nil, false
	}
	return append([]catalog.Activity(nil), f.activity...), true
}

func (f *fakePersistence) SaveActivity(entries []catalog.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activity = append([]catalog.Activity(nil), entries...)
	f.hasLog = true
	return nil
}

// newTestModel builds a UI over fresh seed data with a synchronous
// completion pipeline.
func newTestModel() Model {
	svc := app.New(newFakePersistence(), app.WithScheduler(app.Immediate()))
	m := New(svc)
	m.termWidth = 100
	m.termHeight = 30
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
