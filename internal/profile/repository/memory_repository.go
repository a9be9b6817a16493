package repository

import (
	"sync"
	"time"

	"statusbar-backend/internal/profile/domain"
)

// MemoryProfileRepository is a simple in-memory implementation of
// ProfileRepository. It is NOT persistent and is only suitable for tests.
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.UserProfile
}

// NewMemoryProfileRepository creates a new in-memory ProfileRepository.
func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: make(map[string]*domain.UserProfile),
	}
}

func (r *MemoryProfileRepository) FindByUserID(userID string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func (r *MemoryProfileRepository) Save(profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.UpdatedAt = time.Now()
	clone := *profile
	r.profiles[profile.UserID] = &clone
	return nil
}
