package leads

import (
	"context"
	"fmt"
	"strings"
)

// Service handles lead business logic for the admin back-office. Writes
// go to the store first; the session cache is only updated after the
// store accepted the change, so a failed write leaves both untouched.
type Service struct {
	store   Store
	session *Session
}

// NewService creates a new lead service.
func NewService(store Store, session *Session) *Service {
	return &Service{
		store:   store,
		session: session,
	}
}

// Session exposes the backing session for collaborators that need a
// snapshot of the current collection (import pipeline, export).
func (s *Service) Session() *Session {
	return s.session
}

// ListResult is one page of the admin lead list.
type ListResult struct {
	Data       []Lead `json:"data"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// List returns a filtered, paginated view over the session collection.
// status filters exactly; q matches title, city and phone, case-insensitive.
func (s *Service) List(page, limit int, status Status, q string) ListResult {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	all := s.session.Snapshot()
	q = strings.ToLower(strings.TrimSpace(q))

	filtered := all[:0]
	for _, l := range all {
		if status != "" && l.Status != status {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		filtered = append(filtered, l)
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ListResult{
		Data:       filtered[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Filtered returns every lead matching the given filters, unpaginated.
// Exports use this so a filtered admin view exports exactly what it shows.
func (s *Service) Filtered(status Status, q string) []Lead {
	all := s.session.Snapshot()
	q = strings.ToLower(strings.TrimSpace(q))

	filtered := all[:0]
	for _, l := range all {
		if status != "" && l.Status != status {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

func matchesQuery(l Lead, q string) bool {
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.City), q) ||
		strings.Contains(strings.ToLower(l.Phone), q)
}

// StatusCounts returns how many leads are in each lifecycle state.
func (s *Service) StatusCounts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, l := range s.session.Snapshot() {
		counts[l.Status]++
	}
	return counts
}

// Create inserts a single lead (the non-CSV path, e.g. a contact-form
// lead) and prepends it to the session.
func (s *Service) Create(ctx context.Context, l Lead) (Lead, error) {
	if strings.TrimSpace(l.Title) == "" {
		return Lead{}, fmt.Errorf("title is required")
	}
	if l.Status == "" {
		l.Status = StatusNew
	}
	if !ValidStatus(l.Status) {
		return Lead{}, fmt.Errorf("invalid status: %s", l.Status)
	}

	created, err := s.store.Create(ctx, l)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	s.session.Prepend([]Lead{created})
	return created, nil
}

// UpdateStatus moves a lead to a new lifecycle state.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.session.SetStatus(id, status)
	return nil
}

// UpdateNotes replaces the free-text notes on a lead.
func (s *Service) UpdateNotes(ctx context.Context, id string, notes string) error {
	if err := s.store.UpdateNotes(ctx, id, notes); err != nil {
		return err
	}
	s.session.SetNotes(id, notes)
	return nil
}

// Delete permanently removes one lead.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.session.Remove(id)
	return nil
}

// BulkDelete permanently removes a set of leads.
func (s *Service) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.store.DeleteBatch(ctx, ids); err != nil {
		return err
	}
	s.session.Remove(ids...)
	return nil
}
