package jobboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crewboard/crewboard-back/pkg/cache"
)

const openJobsCacheKey = "jobboard:open"

// Service handles job-board business logic. The open-jobs list is cached
// in Redis because it is read on every chat request and every careers
// page load; any admin mutation invalidates it.
type Service struct {
	store Store
	cache *cache.Client
}

// NewService creates a new job-board service. cache may be nil in tests.
func NewService(store Store, cache *cache.Client) *Service {
	return &Service{store: store, cache: cache}
}

// OpenJobs lists postings currently accepting applications.
func (s *Service) OpenJobs(ctx context.Context) ([]Job, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, openJobsCacheKey); err == nil && cached != "" {
			var jobs []Job
			if err := json.Unmarshal([]byte(cached), &jobs); err == nil {
				return jobs, nil
			}
		}
	}

	jobs, err := s.store.ListJobs(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(jobs); err == nil {
			_ = s.cache.Set(ctx, openJobsCacheKey, data, 10*time.Minute)
		}
	}
	return jobs, nil
}

// AllJobs lists every posting for the admin view.
func (s *Service) AllJobs(ctx context.Context) ([]Job, error) {
	return s.store.ListJobs(ctx, false)
}

// CreateJob adds a posting and invalidates the open-jobs cache.
func (s *Service) CreateJob(ctx context.Context, j Job) (Job, error) {
	if j.Title == "" {
		return Job{}, fmt.Errorf("job title is required")
	}
	j.CreatedAt = time.Now().UTC()

	created, err := s.store.CreateJob(ctx, j)
	if err != nil {
		return Job{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

// UpdateJob edits a posting and invalidates the open-jobs cache.
func (s *Service) UpdateJob(ctx context.Context, j Job) error {
	if err := s.store.UpdateJob(ctx, j); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteJob removes a posting and invalidates the open-jobs cache.
func (s *Service) DeleteJob(ctx context.Context, id string) error {
	if err := s.store.DeleteJob(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Apply records a candidate application against an open posting.
func (s *Service) Apply(ctx context.Context, a Application) (Application, error) {
	if a.JobID == "" || a.Name == "" || a.Email == "" {
		return Application{}, fmt.Errorf("job_id, name and email are required")
	}
	a.CreatedAt = time.Now().UTC()
	return s.store.CreateApplication(ctx, a)
}

// Applications lists applications, optionally filtered by job.
func (s *Service) Applications(ctx context.Context, jobID string) ([]Application, error) {
	return s.store.ListApplications(ctx, jobID)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, openJobsCacheKey)
	}
}
