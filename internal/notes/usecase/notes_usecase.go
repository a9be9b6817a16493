package usecase

import (
	"statusbar-backend/internal/notes/domain"
	"statusbar-backend/internal/notes/repository"
)

// NotesUsecase defines the interface for the brain-dump buffer
type NotesUsecase interface {
	GetNotes(userID string) (string, error)
	SaveNotes(userID, content string) error
}

type notesUsecase struct {
	noteRepo repository.NoteRepository
}

// NewNotesUsecase creates a new instance of notesUsecase
func NewNotesUsecase(noteRepo repository.NoteRepository) NotesUsecase {
	return &notesUsecase{noteRepo: noteRepo}
}

func (u *notesUsecase) GetNotes(userID string) (string, error) {
	note, err := u.noteRepo.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", nil
	}
	return note.Content, nil
}

func (u *notesUsecase) SaveNotes(userID, content string) error {
	return u.noteRepo.Save(&domain.Note{
		UserID:  userID,
		Content: content,
	})
}
