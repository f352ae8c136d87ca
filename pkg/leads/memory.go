package leads

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used in tests and local development.
// Like the real store it assigns IDs at creation time and applies batches
// all-or-nothing.
type MemoryStore struct {
	mu    sync.Mutex
	leads []Lead

	// FailCreates makes CreateBatch fail without persisting anything,
	// for exercising the batch-atomicity path.
	FailCreates bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, l Lead) (Lead, error) {
	created, err := s.CreateBatch(ctx, []Lead{l})
	if err != nil {
		return Lead{}, err
	}
	return created[0], nil
}

func (s *MemoryStore) CreateBatch(ctx context.Context, batch []Lead) ([]Lead, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreates {
		return nil, fmt.Errorf("store unavailable")
	}

	created := make([]Lead, 0, len(batch))
	for _, l := range batch {
		l.ID = uuid.NewString()
		created = append(created, l)
	}
	s.leads = append(s.leads, created...)
	return created, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *MemoryStore) UpdateNotes(ctx context.Context, id string, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Notes = notes
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	return s.DeleteBatch(ctx, []string{id})
}

func (s *MemoryStore) DeleteBatch(ctx context.Context, ids []string) error {
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
	return nil
}

// Count returns the number of persisted leads.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}
