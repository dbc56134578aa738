package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a resume and its parsed document, returning the new ID.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, title, markdown string, document []byte, template string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, markdown, document, template)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, title, markdown, document, template,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume fetches a resume by ID. Returns (nil, nil) when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, markdown, document, template, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Markdown, &r.Document, &r.Template, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns a user's resumes, newest first, without the stored
// markdown and document payloads.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, template, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Template, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// UpdateResumeDocument replaces the stored markdown and parsed document.
func (db *DB) UpdateResumeDocument(ctx context.Context, id uuid.UUID, markdown string, document []byte) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET markdown = $1, document = $2, updated_at = NOW() WHERE id = $3`,
		markdown, document, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}

// DeleteResume removes a resume owned by the given user.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}
