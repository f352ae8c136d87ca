package jobboard

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewboard/crewboard-back/pkg/cache"
)

type fakeStore struct {
	jobs      []Job
	apps      []Application
	listCalls int
}

func (f *fakeStore) ListJobs(ctx context.Context, openOnly bool) ([]Job, error) {
	f.listCalls++
	if !openOnly {
		return f.jobs, nil
	}
	var open []Job
	for _, j := range f.jobs {
		if j.Open {
			open = append(open, j)
		}
	}
	return open, nil
}

func (f *fakeStore) CreateJob(ctx context.Context, j Job) (Job, error) {
	j.ID = "job-1"
	f.jobs = append(f.jobs, j)
	return j, nil
}

func (f *fakeStore) UpdateJob(ctx context.Context, j Job) error { return nil }

func (f *fakeStore) DeleteJob(ctx context.Context, id string) error { return nil }

func (f *fakeStore) CreateApplication(ctx context.Context, a Application) (Application, error) {
	a.ID = "app-1"
	f.apps = append(f.apps, a)
	return a, nil
}

func (f *fakeStore) ListApplications(ctx context.Context, jobID string) ([]Application, error) {
	return f.apps, nil
}

func newCachedService(t *testing.T, store Store) *Service {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return NewService(store, c)
}

func TestOpenJobs_FiltersClosed(t *testing.T) {
	store := &fakeStore{jobs: []Job{
		{ID: "1", Title: "Bartender", Open: true},
		{ID: "2", Title: "Old Gig", Open: false},
	}}
	svc := NewService(store, nil)

	open, err := svc.OpenJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Bartender", open[0].Title)
}

func TestOpenJobs_CachesInRedis(t *testing.T) {
	store := &fakeStore{jobs: []Job{{ID: "1", Title: "Bartender", Open: true}}}
	svc := newCachedService(t, store)
	ctx := context.Background()

	_, err := svc.OpenJobs(ctx)
	require.NoError(t, err)
	_, err = svc.OpenJobs(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls)
}

func TestCreateJob_InvalidatesCache(t *testing.T) {
	store := &fakeStore{jobs: []Job{{ID: "1", Title: "Bartender", Open: true}}}
	svc := newCachedService(t, store)
	ctx := context.Background()

	_, err := svc.OpenJobs(ctx)
	require.NoError(t, err)

	_, err = svc.CreateJob(ctx, Job{Title: "Stage Crew", Open: true})
	require.NoError(t, err)

	// The next read goes back to the store.
	_, err = svc.OpenJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.listCalls)
}

func TestCreateJob_RequiresTitle(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.CreateJob(context.Background(), Job{})
	assert.Error(t, err)
}

func TestApply_Validation(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)
	ctx := context.Background()

	_, err := svc.Apply(ctx, Application{JobID: "1", Name: "Pat"})
	assert.Error(t, err)

	app, err := svc.Apply(ctx, Application{JobID: "1", Name: "Pat", Email: "pat@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
	assert.False(t, app.CreatedAt.IsZero())
}
