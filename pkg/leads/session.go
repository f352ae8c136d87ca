package leads

import (
	"context"
	"fmt"
	"sync"
)

// Session is the in-memory lead collection backing the admin views.
// The external store stays the system of record; the session is a read
// cache that is consulted before writes and updated after them. It is
// never re-fetched mid-operation.
type Session struct {
	mu    sync.RWMutex
	leads []Lead
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Load replaces the session contents with a fresh snapshot from the store.
func (s *Session) Load(ctx context.Context, store Store) error {
	all, err := store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	s.mu.Lock()
	s.leads = all
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current collection. Callers may read it
// freely without holding any lock.
func (s *Session) Snapshot() []Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Len returns the number of cached leads.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// Prepend puts newly created leads in front of the collection in one
// update, matching the newest-first ordering of the admin list.
func (s *Session) Prepend(created []Lead) {
	if len(created) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]Lead, 0, len(created)+len(s.leads))
	merged = append(merged, created...)
	merged = append(merged, s.leads...)
	s.leads = merged
}

// SetStatus updates the cached status of one lead.
func (s *Session) SetStatus(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = status
			return
		}
	}
}

// SetNotes updates the cached notes of one lead.
func (s *Session) SetNotes(id string, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Notes = notes
			return
		}
	}
}

// Remove drops the given leads from the collection. Deletion is permanent
// and removes the lead from every view immediately.
func (s *Session) Remove(ids ...string) {
	if len(ids) == 0 {
		return
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.leads[:0]
	for _, l := range s.leads {
		if _, gone := drop[l.ID]; !gone {
			kept = append(kept, l)
		}
	}
	s.leads = kept
}
