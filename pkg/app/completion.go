package app

import "tableflip.dev/backlog/pkg/catalog"

// The completion pipeline moves an item through idle → animating → removed.
// Confirmation puts the id in the completing set and raises a toast, both
// synchronously; AnimationDelay later a scheduled callback appends the
// activity entry, drops the item from its catalog, and clears the id.

// RequestCompletion records a pending confirmation for the item; nothing is
// completed until ConfirmCompletion. The action tag is derived from the
// active view. Requests for an id already mid-completion are ignored so a
// single physical action cannot enqueue two removals.
func (s *Service) RequestCompletion(itemID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.completing[itemID]; busy {
		return
	}
	action := catalog.ActionPlayed
	if s.view == ViewWatch {
		action = catalog.ActionWatched
	}
	s.pending = &PendingCompletion{ID: itemID, Title: title, Action: action}
}

// CancelConfirmation clears the pending record with no further effect.
func (s *Service) CancelConfirmation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// ConfirmCompletion starts the pipeline for the pending record and clears
// it. Without a pending record it is a no-op.
func (s *Service) ConfirmCompletion() {
	s.mu.Lock()
	pc := s.pending
	s.pending = nil
	if pc == nil {
		s.mu.Unlock()
		return
	}
	s.completing[pc.ID] = struct{}{}
	s.toast = affirmations[s.rnd.Intn(len(affirmations))]
	s.mu.Unlock()

	// The scheduler may fire synchronously (Immediate), so the lock must be
	// released before scheduling.
	cancel := s.sched.Schedule(AnimationDelay, func() {
		s.finishCompletion(pc.ID, pc.Title, pc.Action)
	})

	s.mu.Lock()
	if _, busy := s.completing[pc.ID]; busy {
		s.cancels[pc.ID] = cancel
	}
	s.mu.Unlock()
}

func (s *Service) finishCompletion(itemID, title string, action catalog.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cancels, itemID)
	if _, busy := s.completing[itemID]; !busy {
		return
	}
	delete(s.completing, itemID)

	entry := catalog.Activity{
		ID:           s.newActivityID(),
		ContentTitle: title,
		Action:       action,
		Timestamp:    catalog.Timestamp{Time: s.now()},
	}
	s.activity = append([]catalog.Activity{entry}, s.activity...)

	kind := catalog.Playable
	if action == catalog.ActionWatched {
		kind = catalog.Watchable
	}
	items := s.catalogFor(kind)
	*items = removeItem(*items, itemID)

	s.persistActivity()
	s.persistItems(kind)
}
