package imagestore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

// MemoryStore keeps photos in memory. Useful for tests and local dev.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

type blob struct {
	data     []byte
	mimeType string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]blob)}
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, mimeType string) (wardrobe.StoredImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := md5.Sum(data)
	s.blobs[key] = blob{data: append([]byte(nil), data...), mimeType: mimeType}
	return wardrobe.StoredImage{
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
		ETag:     hex.EncodeToString(sum[:]),
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (wardrobe.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return wardrobe.Image{}, fmt.Errorf("image %q not found", key)
	}
	return wardrobe.Image{Body: io.NopCloser(bytes.NewReader(b.data)), MimeType: b.mimeType}, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Len reports how many blobs are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

var _ wardrobe.ImageStore = (*MemoryStore)(nil)
