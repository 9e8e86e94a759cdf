package catalog

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeedCatalogsAreDisjointAndUnique(t *testing.T) {
	movies := SeedMovies()
	games := SeedGames()

	if len(movies) != 4 {
		t.Fatalf("expected 4 seed movies, got %d", len(movies))
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 seed games, got %d", len(games))
	}

	seen := make(map[string]struct{})
	for _, it := range append(movies, games...) {
		if it.ID == "" || it.Title == "" || it.Description == "" || it.ImageURL == "" || it.Category == "" {
			t.Fatalf("seed item has an empty field: %+v", it)
		}
		if _, dup := seen[it.ID]; dup {
			t.Fatalf("seed id %q appears twice", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
}

func TestSeedReturnsFreshSlices(t *testing.T) {
	a := SeedMovies()
	a[0].Title = "mutated"
	b := SeedMovies()
	if b[0].Title == "mutated" {
		t.Fatal("seed data must not be shared between callers")
	}
}

func TestKindAction(t *testing.T) {
	if Watchable.Action() != ActionWatched {
		t.Fatalf("watchable must map to watched, got %q", Watchable.Action())
	}
	if Playable.Action() != ActionPlayed {
		t.Fatalf("playable must map to played, got %q", Playable.Action())
	}
}

func TestActivityJSONShape(t *testing.T) {
	a := Activity{
		ID:           "a1",
		ContentTitle: "Dune: Part Two",
		Action:       ActionWatched,
		Timestamp:    Timestamp{Time: time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)},
	}
	data, err := json.Marshal(&a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, key := range []string{"id", "contentTitle", "action", "timestamp"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected json key %q in %s", key, data)
		}
	}

	var back Activity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Timestamp.Equal(a.Timestamp.Time) {
		t.Fatalf("timestamp round trip: got %v want %v", back.Timestamp, a.Timestamp)
	}
	if back.Action != ActionWatched {
		t.Fatalf("action round trip: got %q", back.Action)
	}
}

func TestItemJSONUsesCamelCaseImageURL(t *testing.T) {
	data, err := json.Marshal(Item{ID: "m1", ImageURL: "u"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	_ = json.Unmarshal(data, &raw)
	if _, ok := raw["imageUrl"]; !ok {
		t.Fatalf("expected imageUrl key, got %s", data)
	}
}
