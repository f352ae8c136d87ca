package leads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LoadAndSnapshot(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.CreateBatch(context.Background(), []Lead{
		{Title: "Acme", Status: StatusNew},
		{Title: "Bravo", Status: StatusNew},
	})
	require.NoError(t, err)

	session := NewSession()
	require.NoError(t, session.Load(context.Background(), store))
	assert.Equal(t, 2, session.Len())

	// Snapshot is a copy; mutating it does not touch the session.
	snap := session.Snapshot()
	snap[0].Title = "changed"
	assert.Equal(t, "Acme", session.Snapshot()[0].Title)
}

func TestSession_PrependOrdering(t *testing.T) {
	session := NewSession()
	session.Prepend([]Lead{{ID: "1", Title: "old"}})
	session.Prepend([]Lead{{ID: "2", Title: "newer"}, {ID: "3", Title: "newest batch"}})

	snap := session.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "2", snap[0].ID)
	assert.Equal(t, "3", snap[1].ID)
	assert.Equal(t, "1", snap[2].ID)
}

func TestSession_SetStatusAndNotes(t *testing.T) {
	session := NewSession()
	session.Prepend([]Lead{{ID: "1", Status: StatusNew}})

	session.SetStatus("1", StatusPriority)
	session.SetNotes("1", "call tomorrow")

	snap := session.Snapshot()
	assert.Equal(t, StatusPriority, snap[0].Status)
	assert.Equal(t, "call tomorrow", snap[0].Notes)
}

func TestSession_Remove(t *testing.T) {
	session := NewSession()
	session.Prepend([]Lead{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	session.Remove("1", "3")

	snap := session.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "2", snap[0].ID)
}
