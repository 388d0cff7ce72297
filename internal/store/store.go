// Package store provides PostgreSQL persistence for application decisions and error logs.
package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Init creates the applications and error_logs tables if they do not exist.
func (db *DB) Init(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL,
			resume_content TEXT NOT NULL,
			job_description TEXT NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			email_status BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create applications table: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS error_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create error_logs table: %w", err)
	}
	return nil
}

// Application represents a persisted intake decision.
// The (Email, ResumeContent, JobDescription) triple is the dedup key: an exact
// match short-circuits the scoring pipeline. EmailStatus is the only field
// mutated after creation, and only through UpdateEmailStatus.
type Application struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	ResumeContent  string    `json:"resume_content"`
	JobDescription string    `json:"job_description"`
	Score          float64   `json:"score"`
	EmailStatus    bool      `json:"email_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// InsertApplication persists a new application decision and returns its ID
func (db *DB) InsertApplication(ctx context.Context, app *Application) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (email, resume_content, job_description, score, email_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		app.Email, app.ResumeContent, app.JobDescription, round2(app.Score), app.EmailStatus,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert application: %w", err)
	}
	return id, nil
}

// FindByEmail retrieves the oldest application for an email, or nil if none exists
func (db *DB) FindByEmail(ctx context.Context, email string) (*Application, error) {
	return db.findOne(ctx,
		`SELECT id, email, resume_content, job_description, score, email_status, created_at
		 FROM applications WHERE email = $1 ORDER BY created_at ASC LIMIT 1`,
		email)
}

// FindByResume retrieves the oldest application with identical resume content, or nil
func (db *DB) FindByResume(ctx context.Context, resumeContent string) (*Application, error) {
	return db.findOne(ctx,
		`SELECT id, email, resume_content, job_description, score, email_status, created_at
		 FROM applications WHERE resume_content = $1 ORDER BY created_at ASC LIMIT 1`,
		resumeContent)
}

// FindExactMatch retrieves the application matching the full dedup triple, or nil.
// No lock is held between this lookup and a subsequent insert; two concurrent
// identical submissions may both miss and both persist. That race is accepted.
func (db *DB) FindExactMatch(ctx context.Context, email, resumeContent, jobDescription string) (*Application, error) {
	return db.findOne(ctx,
		`SELECT id, email, resume_content, job_description, score, email_status, created_at
		 FROM applications
		 WHERE email = $1 AND resume_content = $2 AND job_description = $3
		 ORDER BY created_at ASC LIMIT 1`,
		email, resumeContent, jobDescription)
}

// UpdateEmailStatus flips the notification flag for the most recent application
// with the given email. Returns false if no matching row exists.
func (db *DB) UpdateEmailStatus(ctx context.Context, email string, status bool) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET email_status = $1
		 WHERE id = (SELECT id FROM applications WHERE email = $2 ORDER BY created_at DESC LIMIT 1)`,
		status, email,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update email status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertErrorLog appends a diagnostic record. The pipeline never reads these back.
func (db *DB) InsertErrorLog(ctx context.Context, message string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO error_logs (message) VALUES ($1)`, message)
	if err != nil {
		return fmt.Errorf("failed to insert error log: %w", err)
	}
	return nil
}

// PruneErrorLogs deletes error log rows older than the cutoff and returns the
// number removed. Retention is a caller policy; the pipeline never prunes.
func (db *DB) PruneErrorLogs(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM error_logs WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune error logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (db *DB) findOne(ctx context.Context, query string, args ...any) (*Application, error) {
	var app Application
	err := db.pool.QueryRow(ctx, query, args...).Scan(
		&app.ID, &app.Email, &app.ResumeContent, &app.JobDescription,
		&app.Score, &app.EmailStatus, &app.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query application: %w", err)
	}
	return &app, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
