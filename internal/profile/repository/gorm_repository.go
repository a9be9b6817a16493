package repository

import (
	"errors"
	"time"

	"statusbar-backend/internal/profile/domain"

	"gorm.io/gorm"
)

// gormProfileRepository implements ProfileRepository using GORM
type gormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository
func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) FindByUserID(userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) Save(profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}
