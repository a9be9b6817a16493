package domain

import "time"

// Note is the free-text brain-dump buffer, one per user.
type Note struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
