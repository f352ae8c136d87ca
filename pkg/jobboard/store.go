package jobboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Store is the persistence layer for jobs and applications.
type Store interface {
	ListJobs(ctx context.Context, openOnly bool) ([]Job, error)
	CreateJob(ctx context.Context, j Job) (Job, error)
	UpdateJob(ctx context.Context, j Job) error
	DeleteJob(ctx context.Context, id string) error
	CreateApplication(ctx context.Context, a Application) (Application, error)
	ListApplications(ctx context.Context, jobID string) ([]Application, error)
}

// PostgresStore implements Store on the jobs and applications tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListJobs(ctx context.Context, openOnly bool) ([]Job, error) {
	q := `SELECT id, title, location, type, pay, description, open, created_at
		FROM jobs ORDER BY created_at DESC`
	if openOnly {
		q = `SELECT id, title, location, type, pay, description, open, created_at
			FROM jobs WHERE open = true ORDER BY created_at DESC`
	}

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Location, &j.Type, &j.Pay,
			&j.Description, &j.Open, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateJob(ctx context.Context, j Job) (Job, error) {
	j.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, title, location, type, pay, description, open, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.Title, j.Location, j.Type, j.Pay, j.Description, j.Open, j.CreatedAt)
	if err != nil {
		return Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) UpdateJob(ctx context.Context, j Job) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET title = $1, location = $2, type = $3, pay = $4,
			description = $5, open = $6 WHERE id = $7`,
		j.Title, j.Location, j.Type, j.Pay, j.Description, j.Open, j.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("job not found: %s", j.ID)
	}
	return err
}

func (s *PostgresStore) DeleteJob(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateApplication(ctx context.Context, a Application) (Application, error) {
	a.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (id, job_id, name, email, phone, message, cv_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.Name, a.Email, a.Phone, a.Message, a.CVURL, a.CreatedAt)
	if err != nil {
		return Application{}, fmt.Errorf("failed to create application: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListApplications(ctx context.Context, jobID string) ([]Application, error) {
	q := `SELECT id, job_id, name, email, phone, message, cv_url, created_at
		FROM applications ORDER BY created_at DESC`
	args := []any{}
	if jobID != "" {
		q = `SELECT id, job_id, name, email, phone, message, cv_url, created_at
			FROM applications WHERE job_id = $1 ORDER BY created_at DESC`
		args = append(args, jobID)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone,
			&a.Message, &a.CVURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
