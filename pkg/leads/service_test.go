package leads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceFixture(t *testing.T, seed []Lead) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if len(seed) > 0 {
		_, err := store.CreateBatch(context.Background(), seed)
		require.NoError(t, err)
	}

	session := NewSession()
	require.NoError(t, session.Load(context.Background(), store))
	return NewService(store, session), store
}

func TestList_Pagination(t *testing.T) {
	seed := make([]Lead, 5)
	for i := range seed {
		seed[i] = Lead{Title: "Lead", Status: StatusNew}
	}
	svc, _ := newServiceFixture(t, seed)

	page1 := svc.List(1, 2, "", "")
	assert.Len(t, page1.Data, 2)
	assert.Equal(t, 5, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)

	page3 := svc.List(3, 2, "", "")
	assert.Len(t, page3.Data, 1)

	beyond := svc.List(9, 2, "", "")
	assert.Empty(t, beyond.Data)
}

func TestList_StatusFilter(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{
		{Title: "A", Status: StatusNew},
		{Title: "B", Status: StatusPriority},
		{Title: "C", Status: StatusNew},
	})

	result := svc.List(1, 50, StatusNew, "")
	assert.Equal(t, 2, result.Total)

	result = svc.List(1, 50, StatusPriority, "")
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "B", result.Data[0].Title)
}

func TestList_Query(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{
		{Title: "Acme Events", City: "Austin", Status: StatusNew},
		{Title: "Bravo Co", City: "Dallas", Phone: "555-0100", Status: StatusNew},
	})

	assert.Equal(t, 1, svc.List(1, 50, "", "acme").Total)
	assert.Equal(t, 1, svc.List(1, 50, "", "dallas").Total)
	assert.Equal(t, 1, svc.List(1, 50, "", "555-01").Total)
	assert.Equal(t, 0, svc.List(1, 50, "", "zzz").Total)
}

func TestFiltered(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{
		{Title: "Acme Events", City: "Austin", Status: StatusNew},
		{Title: "Bravo Co", City: "Dallas", Status: StatusPriority},
		{Title: "Acme Catering", City: "Austin", Status: StatusPriority},
	})

	assert.Len(t, svc.Filtered("", ""), 3)
	assert.Len(t, svc.Filtered(StatusPriority, ""), 2)
	assert.Len(t, svc.Filtered(StatusPriority, "acme"), 1)
	assert.Len(t, svc.Filtered("", "austin"), 2)
}

func TestStatusCounts(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{
		{Title: "A", Status: StatusNew},
		{Title: "B", Status: StatusNew},
		{Title: "C", Status: StatusContacted},
	})

	counts := svc.StatusCounts()
	assert.Equal(t, 2, counts[StatusNew])
	assert.Equal(t, 1, counts[StatusContacted])
	assert.Equal(t, 0, counts[StatusRejected])
}

func TestCreate_Validation(t *testing.T) {
	svc, store := newServiceFixture(t, nil)

	_, err := svc.Create(context.Background(), Lead{Title: "  "})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), Lead{Title: "Acme", Status: "bogus"})
	assert.Error(t, err)
	assert.Equal(t, 0, store.Count())

	created, err := svc.Create(context.Background(), Lead{Title: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, StatusNew, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, svc.Session().Len())
}

func TestUpdateStatus_SyncsSessionAndStore(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{{Title: "Acme", Status: StatusNew}})
	id := svc.Session().Snapshot()[0].ID

	require.NoError(t, svc.UpdateStatus(context.Background(), id, StatusPriority))
	assert.Equal(t, StatusPriority, svc.Session().Snapshot()[0].Status)

	err := svc.UpdateStatus(context.Background(), id, "bogus")
	assert.Error(t, err)
}

func TestUpdateStatus_NotFoundLeavesSessionUntouched(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{{Title: "Acme", Status: StatusNew}})

	err := svc.UpdateStatus(context.Background(), "missing-id", StatusPriority)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StatusNew, svc.Session().Snapshot()[0].Status)
}

func TestUpdateNotes(t *testing.T) {
	svc, _ := newServiceFixture(t, []Lead{{Title: "Acme", Status: StatusNew}})
	id := svc.Session().Snapshot()[0].ID

	require.NoError(t, svc.UpdateNotes(context.Background(), id, "call back"))
	assert.Equal(t, "call back", svc.Session().Snapshot()[0].Notes)
}

func TestDelete(t *testing.T) {
	svc, store := newServiceFixture(t, []Lead{{Title: "Acme", Status: StatusNew}})
	id := svc.Session().Snapshot()[0].ID

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, 0, svc.Session().Len())
	assert.Equal(t, 0, store.Count())
}

func TestBulkDelete(t *testing.T) {
	svc, store := newServiceFixture(t, []Lead{
		{Title: "A", Status: StatusNew},
		{Title: "B", Status: StatusNew},
		{Title: "C", Status: StatusNew},
	})

	snap := svc.Session().Snapshot()
	require.NoError(t, svc.BulkDelete(context.Background(), []string{snap[0].ID, snap[2].ID}))

	assert.Equal(t, 1, svc.Session().Len())
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, "B", svc.Session().Snapshot()[0].Title)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusNew))
	assert.True(t, ValidStatus(StatusContacted))
	assert.True(t, ValidStatus(StatusPriority))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
