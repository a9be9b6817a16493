package repository

import (
	"time"

	"statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormScheduleRepository implements ScheduleRepository using GORM
type gormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GORM-based ScheduleRepository
func NewGormScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &gormScheduleRepository{db: db}
}

func (r *gormScheduleRepository) FindByUserID(userID string) ([]*domain.ScheduleSlot, error) {
	var slots []*domain.ScheduleSlot
	err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&slots).Error
	return slots, err
}

func (r *gormScheduleRepository) ReplaceForUser(userID string, slots []*domain.ScheduleSlot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.ScheduleSlot{}).Error; err != nil {
			return err
		}
		for i, slot := range slots {
			if slot.ID == "" {
				slot.ID = uuid.New().String()
			}
			slot.UserID = userID
			slot.Position = i
			slot.CreatedAt = time.Now()
			if err := tx.Create(slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormScheduleRepository) SavePositions(slots []*domain.ScheduleSlot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			if err := tx.Model(&domain.ScheduleSlot{}).Where("id = ?", slot.ID).
				Update("position", slot.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormScheduleRepository) DeleteByTaskID(userID, taskID string) error {
	return r.db.Where("user_id = ? AND task_id = ?", userID, taskID).Delete(&domain.ScheduleSlot{}).Error
}

func (r *gormScheduleRepository) UpdateTaskFields(userID, taskID, title string, category taskdomain.Category) error {
	return r.db.Model(&domain.ScheduleSlot{}).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Updates(map[string]interface{}{
			"title":    title,
			"category": category,
		}).Error
}
