package popularstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
)

// MemoryStore counts date views in process memory for tests/dev.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string]int64
}

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{views: make(map[string]int64)}
}

func (s *MemoryStore) IncrementView(_ context.Context, date string) error {
	if date == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[date]++
	return nil
}

func (s *MemoryStore) TopDates(_ context.Context, limit int) ([]advisor.PopularDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	items := make([]advisor.PopularDate, 0, len(s.views))
	for date, count := range s.views {
		items = append(items, advisor.PopularDate{Date: date, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Date < items[j].Date
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ advisor.Store = (*MemoryStore)(nil)
