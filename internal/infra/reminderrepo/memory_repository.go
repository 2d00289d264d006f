package reminderrepo

import (
	"context"
	"sync"

	"github.com/yanqian/astro-dates/internal/domain/reminder"
)

// MemoryRepository is an in-memory reminder store used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	byKey   map[string]reminder.Reminder
	ordered []reminder.Reminder
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byKey: make(map[string]reminder.Reminder)}
}

func (r *MemoryRepository) Save(_ context.Context, rem reminder.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[key(rem.Email, rem.Date)] = rem
	r.ordered = append(r.ordered, rem)
	return nil
}

func (r *MemoryRepository) Exists(_ context.Context, email, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byKey[key(email, date)]
	return ok, nil
}

func key(email, date string) string {
	return email + "|" + date
}

var _ reminder.Repository = (*MemoryRepository)(nil)
