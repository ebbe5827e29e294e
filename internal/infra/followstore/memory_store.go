package followstore

import (
	"context"
	"sync"

	"github.com/yanqian/smartcloset/internal/domain/social"
)

type edge struct {
	from, to int64
}

// MemoryStore keeps the follow graph in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	edges     map[edge]struct{}
	followers map[int64]int
	following map[int64]int
}

// NewMemoryStore constructs an empty graph.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		edges:     make(map[edge]struct{}),
		followers: make(map[int64]int),
		following: make(map[int64]int),
	}
}

func (s *MemoryStore) Follow(_ context.Context, followerID, followeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := edge{followerID, followeeID}
	if _, ok := s.edges[e]; ok {
		return nil
	}
	s.edges[e] = struct{}{}
	s.following[followerID]++
	s.followers[followeeID]++
	return nil
}

func (s *MemoryStore) Unfollow(_ context.Context, followerID, followeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := edge{followerID, followeeID}
	if _, ok := s.edges[e]; !ok {
		return nil
	}
	delete(s.edges, e)
	s.following[followerID]--
	s.followers[followeeID]--
	return nil
}

func (s *MemoryStore) IsFollowing(_ context.Context, followerID, followeeID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.edges[edge{followerID, followeeID}]
	return ok, nil
}

func (s *MemoryStore) FollowerCount(_ context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.followers[userID], nil
}

func (s *MemoryStore) FollowingCount(_ context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.following[userID], nil
}

var _ social.FollowStore = (*MemoryStore)(nil)
