package repository

import (
	"sync"
	"time"

	"statusbar-backend/internal/task/domain"

	"github.com/google/uuid"
)

// MemoryTaskRepository is a simple in-memory implementation of TaskRepository.
// It is NOT persistent and is only suitable for tests / local mode.
type MemoryTaskRepository struct {
	mu       sync.RWMutex
	tasks    map[string]*domain.Task
	byUserID map[string][]string // insertion order per user
}

// NewMemoryTaskRepository creates a new in-memory TaskRepository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks:    make(map[string]*domain.Task),
		byUserID: make(map[string][]string),
	}
}

func (r *MemoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	task.UpdatedAt = time.Now()

	clone := *task
	r.tasks[task.ID] = &clone
	r.byUserID[task.UserID] = append(r.byUserID[task.UserID], task.ID)
	return nil
}

func (r *MemoryTaskRepository) FindByID(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	clone := *task
	return &clone, nil
}

func (r *MemoryTaskRepository) FindByUserID(userID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Task, 0, len(r.byUserID[userID]))
	for _, id := range r.byUserID[userID] {
		if t, ok := r.tasks[id]; ok {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *MemoryTaskRepository) Update(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.UpdatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *MemoryTaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}
	delete(r.tasks, id)
	r.byUserID[task.UserID] = removeID(r.byUserID[task.UserID], id)
	return nil
}

func (r *MemoryTaskRepository) DeleteCompleted(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	kept := r.byUserID[userID][:0]
	for _, id := range r.byUserID[userID] {
		if t, ok := r.tasks[id]; ok && t.Completed {
			delete(r.tasks, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.byUserID[userID] = kept
	return removed, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
