package repository

import (
	"statusbar-backend/internal/notes/domain"
)

// NoteRepository defines the interface for notes data access
type NoteRepository interface {
	// FindByUserID returns the user's note, or (nil, nil) when absent
	FindByUserID(userID string) (*domain.Note, error)

	// Save upserts the note
	Save(note *domain.Note) error
}
