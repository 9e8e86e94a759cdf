package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/backlog/pkg/catalog"
)

// Persistence defines the persistence contract for the three collection
// slots. Every save serializes the entire slot; there are no delta writes.
// Loads report ok=false when a slot is absent or unreadable so callers can
// fall back to seed data instead of crashing on malformed input.
type Persistence interface {
	Items(kind catalog.Kind) ([]catalog.Item, bool)
	SaveItems(kind catalog.Kind, items []catalog.Item) error
	Activity() ([]catalog.Activity, bool)
	SaveActivity(entries []catalog.Activity) error
}

const activitySlot = "activity"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Items(kind catalog.Kind) ([]catalog.Item, bool) {
	val, err := p.d.Read(string(kind))
	if err != nil {
		return nil, false
	}
	var items []catalog.Item
	if err := json.Unmarshal(val, &items); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", kind, err)
		return nil, false
	}
	return items, true
}

func (p *persistence) SaveItems(kind catalog.Kind, items []catalog.Item) error {
	if items == nil {
		items = []catalog.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", kind, err)
	}
	if err := p.d.Write(string(kind), data); err != nil {
		return fmt.Errorf("store: write %s: %w", kind, err)
	}
	return nil
}

func (p *persistence) Activity() ([]catalog.Activity, bool) {
	val, err := p.d.Read(activitySlot)
	if err != nil {
		return nil, false
	}
	var entries []catalog.Activity
	if err := json.Unmarshal(val, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", activitySlot, err)
		return nil, false
	}
	return entries, true
}

func (p *persistence) SaveActivity(entries []catalog.Activity) error {
	if entries == nil {
		entries = []catalog.Activity{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", activitySlot, err)
	}
	if err := p.d.Write(activitySlot, data); err != nil {
		return fmt.Errorf("store: write %s: %w", activitySlot, err)
	}
	return nil
}
