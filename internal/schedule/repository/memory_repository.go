package repository

import (
	"sort"
	"sync"
	"time"

	"statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"

	"github.com/google/uuid"
)

// MemoryScheduleRepository is a simple in-memory implementation of
// ScheduleRepository. It is NOT persistent and is only suitable for tests.
type MemoryScheduleRepository struct {
	mu       sync.RWMutex
	byUserID map[string][]*domain.ScheduleSlot
}

// NewMemoryScheduleRepository creates a new in-memory ScheduleRepository.
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{
		byUserID: make(map[string][]*domain.ScheduleSlot),
	}
}

func (r *MemoryScheduleRepository) FindByUserID(userID string) ([]*domain.ScheduleSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := r.byUserID[userID]
	out := make([]*domain.ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		clone := *s
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *MemoryScheduleRepository) ReplaceForUser(userID string, slots []*domain.ScheduleSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]*domain.ScheduleSlot, 0, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.UserID = userID
		slot.Position = i
		slot.CreatedAt = time.Now()
		clone := *slot
		stored = append(stored, &clone)
	}
	r.byUserID[userID] = stored
	return nil
}

func (r *MemoryScheduleRepository) SavePositions(slots []*domain.ScheduleSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := make(map[string]int, len(slots))
	for _, s := range slots {
		positions[s.ID] = s.Position
	}
	for _, stored := range r.byUserID {
		for _, s := range stored {
			if pos, ok := positions[s.ID]; ok {
				s.Position = pos
			}
		}
	}
	return nil
}

func (r *MemoryScheduleRepository) DeleteByTaskID(userID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.byUserID[userID][:0]
	for _, s := range r.byUserID[userID] {
		if s.TaskID != taskID {
			kept = append(kept, s)
		}
	}
	r.byUserID[userID] = kept
	return nil
}

func (r *MemoryScheduleRepository) UpdateTaskFields(userID, taskID, title string, category taskdomain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.byUserID[userID] {
		if s.TaskID == taskID {
			s.Title = title
			s.Category = category
		}
	}
	return nil
}
