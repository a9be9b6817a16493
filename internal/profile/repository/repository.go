package repository

import (
	"statusbar-backend/internal/profile/domain"
)

// ProfileRepository defines the interface for user profile data access
type ProfileRepository interface {
	// FindByUserID returns the user's profile, or (nil, nil) when absent
	FindByUserID(userID string) (*domain.UserProfile, error)

	// Save upserts the profile (write-through on every change)
	Save(profile *domain.UserProfile) error
}
