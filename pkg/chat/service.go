package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/crewboard/crewboard-back/pkg/jobboard"
)

// ErrRateLimited is returned when a visitor exceeds their chat budget.
var ErrRateLimited = errors.New("too many chat requests")

const jobContextKey = "jobs"

// JobLister provides the open postings injected into the prompt.
type JobLister interface {
	OpenJobs(ctx context.Context) ([]jobboard.Job, error)
}

// Service is the chat concierge backend. It checks the visitor budget
// and forwards the question to the hosted model together with a system
// prompt carrying job-listing context. It never stores conversation
// state.
type Service struct {
	llm        LLM
	jobs       JobLister
	promptCach *TTLCache
	limiter    *VisitorLimiter
	logger     *log.Logger
}

// NewService wires the concierge. cache and limiter are required; they
// are owned by the caller so the cron sweeper can reach them too.
func NewService(llm LLM, jobs JobLister, cache *TTLCache, limiter *VisitorLimiter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		llm:        llm,
		jobs:       jobs,
		promptCach: cache,
		limiter:    limiter,
		logger:     logger,
	}
}

// Ask answers one visitor question. The job context is rebuilt from the
// store only when the cached copy has expired.
func (s *Service) Ask(ctx context.Context, visitorID, question string) (string, error) {
	if !s.limiter.Allow(visitorID) {
		return "", ErrRateLimited
	}

	systemPrompt, ok := s.promptCach.Get(jobContextKey)
	if !ok {
		jobs, err := s.jobs.OpenJobs(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load job context: %w", err)
		}
		systemPrompt = BuildSystemPrompt(jobs)
		s.promptCach.Set(jobContextKey, systemPrompt)
	}

	answer, err := s.llm.Complete(ctx, systemPrompt, question)
	if err != nil {
		return "", err
	}
	return answer, nil
}

// RefreshJobContext rebuilds the cached prompt; the cron manager calls
// this so admin edits show up without waiting for TTL expiry.
func (s *Service) RefreshJobContext(ctx context.Context) error {
	jobs, err := s.jobs.OpenJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh job context: %w", err)
	}
	s.promptCach.Set(jobContextKey, BuildSystemPrompt(jobs))
	return nil
}
