package viberepo

import (
	"context"
	"sync"

	"github.com/yanqian/smartcloset/internal/domain/vibe"
)

// MemoryRepository keeps custom vibes in process memory for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	vibes map[int64][]vibe.Vibe
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{vibes: make(map[int64][]vibe.Vibe)}
}

// ListCustom returns the user's vibes in creation order.
func (r *MemoryRepository) ListCustom(_ context.Context, userID int64) ([]vibe.Vibe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]vibe.Vibe, len(r.vibes[userID]))
	copy(out, r.vibes[userID])
	return out, nil
}

// SaveCustom appends a vibe.
func (r *MemoryRepository) SaveCustom(_ context.Context, userID int64, v vibe.Vibe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vibes[userID] = append(r.vibes[userID], v)
	return nil
}

// DeleteCustom removes a vibe and reports whether it existed.
func (r *MemoryRepository) DeleteCustom(_ context.Context, userID int64, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.vibes[userID]
	for i, v := range items {
		if v.ID != id {
			continue
		}
		r.vibes[userID] = append(items[:i:i], items[i+1:]...)
		return true, nil
	}
	return false, nil
}

var _ vibe.Repository = (*MemoryRepository)(nil)
