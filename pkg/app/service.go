// Package app owns the application state: the two catalogs, the activity
// log, and all session flags the presentation layer renders. UIs and CLIs
// mutate state only through the operations defined here; every collection
// change is mirrored to the store before the operation returns.
package app

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/backlog/pkg/catalog"
	"tableflip.dev/backlog/pkg/id"
	"tableflip.dev/backlog/pkg/store"
)

// View selects which screen the presentation renders.
type View int

const (
	ViewWatch View = iota
	ViewPlay
	ViewLog
)

// Kind maps the view onto the catalog its mutations target. Anything that is
// not the watch view resolves to the play catalog, mirroring the log view's
// historical behavior.
func (v View) Kind() catalog.Kind {
	if v == ViewWatch {
		return catalog.Watchable
	}
	return catalog.Playable
}

// adminPassword is cosmetic gating for the editing surface, not an access
// control boundary: it ships in the binary as plain text.
const adminPassword = "admin"

const loginErrorText = "Incorrect password. Please try again."

const (
	// AnimationDelay is how long a confirmed item stays in the completing
	// set before it is removed from its catalog and logged.
	AnimationDelay = 1000 * time.Millisecond
	// ToastTTL is how long the presentation should keep a toast on screen
	// before calling ClearToast.
	ToastTTL = 3000 * time.Millisecond
)

var affirmations = []string{
	"Great work!",
	"You're the best!",
	"New milestone!",
	"Keep it going!",
	"Amazing!",
	"Onward!",
}

// PendingCompletion is the confirmation gate between a completion request
// and the pipeline that performs it.
type PendingCompletion struct {
	ID     string
	Title  string
	Action catalog.Action
}

// ItemFields carries the editable fields of a catalog item. The editing form
// validates them; the model does not.
type ItemFields struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
}

// Service is the single owner of all mutable session state.
type Service struct {
	mu sync.Mutex
	p  store.Persistence

	movies   []catalog.Item
	games    []catalog.Item
	activity []catalog.Activity

	admin            bool
	view             View
	adminModalOpen   bool
	contentModalOpen bool
	editing          *catalog.Item
	pending          *PendingCompletion
	completing       map[string]struct{}
	cancels          map[string]func()
	toast            string
	loginError       string

	sched         Scheduler
	rnd           *rand.Rand
	now           func() time.Time
	newItemID     func() string
	newActivityID func() string
}

// Option tweaks a Service at construction time.
type Option func(*Service)

// WithScheduler replaces the timer scheduler driving the completion
// pipeline. CLI verbs pass Immediate(); tests pass a manual fake.
func WithScheduler(s Scheduler) Option {
	return func(svc *Service) { svc.sched = s }
}

// WithRandSource seeds toast selection for deterministic output.
func WithRandSource(src rand.Source) Option {
	return func(svc *Service) { svc.rnd = rand.New(src) }
}

// New builds a Service on top of the given persistence, loading the three
// slots once and seeding the built-in defaults for any slot that is absent
// or unreadable.
func New(p store.Persistence, opts ...Option) *Service {
	s := &Service{
		p:             p,
		view:          ViewWatch,
		completing:    make(map[string]struct{}),
		cancels:       make(map[string]func()),
		sched:         NewTimerScheduler(),
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
		newItemID:     id.New,
		newActivityID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if movies, ok := p.Items(catalog.Watchable); ok {
		s.movies = movies
	} else {
		s.movies = catalog.SeedMovies()
		s.persistItems(catalog.Watchable)
	}
	if games, ok := p.Items(catalog.Playable); ok {
		s.games = games
	} else {
		s.games = catalog.SeedGames()
		s.persistItems(catalog.Playable)
	}
	if entries, ok := p.Activity(); ok {
		s.activity = entries
	} else {
		s.activity = []catalog.Activity{}
		s.persistActivity()
	}
	return s
}

// Login compares the password against the built-in secret. Success turns the
// admin flag on, closes the admin modal, and clears any prior error; failure
// sets a user-visible error and leaves the flag alone.
func (s *Service) Login(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if password == adminPassword {
		s.admin = true
		s.adminModalOpen = false
		s.loginError = ""
		return true
	}
	s.loginError = loginErrorText
	return false
}

// Logout clears the admin flag unconditionally.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = false
}

// SwitchView changes the active view. No side effects on collections.
func (s *Service) SwitchView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// OpenAdminModal opens the login dialog. Opening one modal closes the other;
// last opened wins.
func (s *Service) OpenAdminModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginError = ""
	s.adminModalOpen = true
	s.contentModalOpen = false
	s.editing = nil
}

func (s *Service) CloseAdminModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminModalOpen = false
}

// OpenAddModal opens the content form with an empty editing slot.
func (s *Service) OpenAddModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
	s.contentModalOpen = true
	s.adminModalOpen = false
}

// OpenEditModal opens the content form pre-filled with the given item.
func (s *Service) OpenEditModal(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := item
	s.editing = &cp
	s.contentModalOpen = true
	s.adminModalOpen = false
}

func (s *Service) CloseContentModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contentModalOpen = false
	s.editing = nil
}

// SaveContent replaces the fields of the item with the given id in the
// active view's catalog, or appends a new item with a fresh id when the id
// is empty or unknown. The editing slot is cleared either way.
func (s *Service) SaveContent(fields ItemFields, itemID string) catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := s.view.Kind()
	items := s.catalogFor(kind)

	saved := catalog.Item{
		ID:          itemID,
		Title:       fields.Title,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Category:    fields.Category,
	}

	replaced := false
	if itemID != "" {
		for i := range *items {
			if (*items)[i].ID == itemID {
				(*items)[i] = saved
				replaced = true
				break
			}
		}
	}
	if !replaced {
		saved.ID = s.newItemID()
		*items = append(*items, saved)
	}

	s.editing = nil
	s.contentModalOpen = false
	s.persistItems(kind)
	return saved
}

// DeleteContent removes the item with the given id from the active view's
// catalog. Unknown ids are a no-op.
func (s *Service) DeleteContent(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := s.view.Kind()
	items := s.catalogFor(kind)
	next := removeItem(*items, itemID)
	if len(next) == len(*items) {
		return
	}
	*items = next
	s.persistItems(kind)
}

// DeleteActivity removes the matching log entry. Unknown ids are a no-op.
func (s *Service) DeleteActivity(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]catalog.Activity, 0, len(s.activity))
	for _, a := range s.activity {
		if a.ID != entryID {
			next = append(next, a)
		}
	}
	if len(next) == len(s.activity) {
		return
	}
	s.activity = next
	s.persistActivity()
}

// ClearToast removes the current toast, if any.
func (s *Service) ClearToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast = ""
}

// catalogFor returns the mutable slice for a kind. Callers hold s.mu.
func (s *Service) catalogFor(kind catalog.Kind) *[]catalog.Item {
	if kind == catalog.Watchable {
		return &s.movies
	}
	return &s.games
}

// persistItems mirrors the in-memory catalog to the store. Callers hold
// s.mu. A failed write is reported but not retried.
func (s *Service) persistItems(kind catalog.Kind) {
	items := s.movies
	if kind == catalog.Playable {
		items = s.games
	}
	if err := s.p.SaveItems(kind, items); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

func (s *Service) persistActivity() {
	if err := s.p.SaveActivity(s.activity); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

func removeItem(items []catalog.Item, itemID string) []catalog.Item {
	next := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			next = append(next, it)
		}
	}
	return next
}
