package leads

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresStore implements Store on top of a leads table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a pooled connection and verifies it with a ping.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection (used by cmd/seed).
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// DB exposes the pool so other stores can share the same connection.
func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const leadColumns = `id, title, phone, email1, email2, email3, email4, email5,
	website, url, instagram1, instagram2, facebook1, facebook2,
	linkedin1, linkedin2, youtube1, youtube2, tiktok1, tiktok2,
	twitter1, twitter2, city, image_url, notes, status, uploaded_at`

// ListAll returns every lead, newest upload first.
func (s *PostgresStore) ListAll(ctx context.Context) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY uploaded_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create inserts a single lead and returns it with its assigned ID.
func (s *PostgresStore) Create(ctx context.Context, l Lead) (Lead, error) {
	created, err := s.CreateBatch(ctx, []Lead{l})
	if err != nil {
		return Lead{}, err
	}
	return created[0], nil
}

// CreateBatch inserts all leads inside a single transaction and returns
// them with their assigned IDs, in input order. The transaction makes the
// batch all-or-nothing.
func (s *PostgresStore) CreateBatch(ctx context.Context, batch []Lead) ([]Lead, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO leads (`+leadColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	created := make([]Lead, 0, len(batch))
	for _, l := range batch {
		l.ID = uuid.NewString()
		if _, err := stmt.ExecContext(ctx,
			l.ID, l.Title, l.Phone, l.Email1, l.Email2, l.Email3, l.Email4, l.Email5,
			l.Website, l.URL, l.Instagram1, l.Instagram2, l.Facebook1, l.Facebook2,
			l.Linkedin1, l.Linkedin2, l.Youtube1, l.Youtube2, l.Tiktok1, l.Tiktok2,
			l.Twitter1, l.Twitter2, l.City, l.ImageURL, l.Notes, string(l.Status), l.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to insert lead %q: %w", l.Title, err)
		}
		created = append(created, l)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}
	return created, nil
}

// UpdateStatus updates the lifecycle status of one lead.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return requireRow(res, id)
}

// UpdateNotes replaces the free-text notes of one lead.
func (s *PostgresStore) UpdateNotes(ctx context.Context, id string, notes string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET notes = $1 WHERE id = $2`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}
	return requireRow(res, id)
}

// Delete permanently removes one lead. There is no soft delete.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return requireRow(res, id)
}

// DeleteBatch permanently removes all given leads in one transaction.
func (s *PostgresStore) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete lead %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// ErrNotFound is returned when an update or delete matches no lead.
var ErrNotFound = fmt.Errorf("lead not found")

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(r rowScanner) (Lead, error) {
	var l Lead
	var status string
	err := r.Scan(
		&l.ID, &l.Title, &l.Phone, &l.Email1, &l.Email2, &l.Email3, &l.Email4, &l.Email5,
		&l.Website, &l.URL, &l.Instagram1, &l.Instagram2, &l.Facebook1, &l.Facebook2,
		&l.Linkedin1, &l.Linkedin2, &l.Youtube1, &l.Youtube2, &l.Tiktok1, &l.Tiktok2,
		&l.Twitter1, &l.Twitter2, &l.City, &l.ImageURL, &l.Notes, &status, &l.UploadedAt,
	)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to scan lead: %w", err)
	}
	l.Status = Status(status)
	return l, nil
}
