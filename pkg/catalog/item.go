package catalog

// Kind selects one of the two item catalogs.
type Kind string

const (
	Watchable Kind = "movies"
	Playable  Kind = "games"
)

// Action tags an activity entry with how an item was finished.
type Action string

const (
	ActionWatched Action = "watched"
	ActionPlayed  Action = "played"
)

// Action returns the activity tag recorded when an item of this kind is
// completed.
func (k Kind) Action() Action {
	if k == Watchable {
		return ActionWatched
	}
	return ActionPlayed
}

func (k Kind) String() string {
	return string(k)
}

// Item is a single tracked movie or game. The ID is assigned at creation and
// never changes; everything else is free-form text maintained by the editing
// form.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}
