package repository

import (
	"errors"
	"time"

	"statusbar-backend/internal/notes/domain"

	"gorm.io/gorm"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) FindByUserID(userID string) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("user_id = ?", userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) Save(note *domain.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}
