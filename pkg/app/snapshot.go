package app

import "tableflip.dev/backlog/pkg/catalog"

// Snapshot is the consistent read-only view handed to the presentation
// layer. Everything is copied; rendering never races a timer callback.
type Snapshot struct {
	Movies      []catalog.Item
	Games       []catalog.Item
	ActivityLog []catalog.Activity

	Admin      bool
	View       View
	LoginError string
	Toast      string

	AdminModalOpen   bool
	ContentModalOpen bool
	Editing          *catalog.Item
	Pending          *PendingCompletion
	Completing       map[string]struct{}

	// Watched and Played are the activity totals shown in the nav.
	Watched int
	Played  int
}

// IsCompleting reports whether the item is mid-completion-animation.
func (sn Snapshot) IsCompleting(itemID string) bool {
	_, ok := sn.Completing[itemID]
	return ok
}

// Items returns the catalog the snapshot's active view targets.
func (sn Snapshot) Items() []catalog.Item {
	if sn.View.Kind() == catalog.Watchable {
		return sn.Movies
	}
	return sn.Games
}

// Snapshot copies the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn := Snapshot{
		Movies:           append([]catalog.Item(nil), s.movies...),
		Games:            append([]catalog.Item(nil), s.games...),
		ActivityLog:      append([]catalog.Activity(nil), s.activity...),
		Admin:            s.admin,
		View:             s.view,
		LoginError:       s.loginError,
		Toast:            s.toast,
		AdminModalOpen:   s.adminModalOpen,
		ContentModalOpen: s.contentModalOpen,
		Completing:       make(map[string]struct{}, len(s.completing)),
	}
	if s.editing != nil {
		cp := *s.editing
		sn.Editing = &cp
	}
	if s.pending != nil {
		cp := *s.pending
		sn.Pending = &cp
	}
	for id := range s.completing {
		sn.Completing[id] = struct{}{}
	}
	for _, a := range s.activity {
		switch a.Action {
		case catalog.ActionWatched:
			sn.Watched++
		case catalog.ActionPlayed:
			sn.Played++
		}
	}
	return sn
}
