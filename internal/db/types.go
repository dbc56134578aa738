package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume represents a stored resume: the raw Markdown as received from
// the LLM plus the parsed document snapshot derived from it.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	Document  []byte    `json:"document"` // serialized ResumeDocument JSON
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
