package wardroberepo

import (
	"context"
	"sync"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

// MemoryRepository stores closet items in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[int64][]wardrobe.Item
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64][]wardrobe.Item)}
}

func (r *MemoryRepository) Create(_ context.Context, item wardrobe.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.UserID] = append(r.items[item.UserID], item)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, userID int64) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wardrobe.Item, len(r.items[userID]))
	copy(out, r.items[userID])
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, userID int64, id string) (wardrobe.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items[userID] {
		if item.ID == id {
			return item, true, nil
		}
	}
	return wardrobe.Item{}, false, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID int64, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[userID]
	for i, item := range items {
		if item.ID == id {
			r.items[userID] = append(items[:i:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Clear(_ context.Context, userID int64) ([]wardrobe.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := r.items[userID]
	delete(r.items, userID)
	return removed, nil
}

func (r *MemoryRepository) Count(_ context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items[userID]), nil
}

var _ wardrobe.Repository = (*MemoryRepository)(nil)
