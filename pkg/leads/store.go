package leads

import "context"

// Store is the persistence layer for leads. The backing store is the
// system of record; it assigns document IDs at creation time.
//
// CreateBatch is all-or-nothing: either every lead in the batch is
// persisted or none is.
type Store interface {
	ListAll(ctx context.Context) ([]Lead, error)
	Create(ctx context.Context, l Lead) (Lead, error)
	CreateBatch(ctx context.Context, batch []Lead) ([]Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateNotes(ctx context.Context, id string, notes string) error
	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, ids []string) error
}
