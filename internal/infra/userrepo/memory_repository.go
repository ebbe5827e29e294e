package userrepo

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/social"
)

// MemoryRepository provides an in-memory account store for tests/dev.
type MemoryRepository struct {
	mu          sync.RWMutex
	users       map[int64]auth.User
	emailIndex  map[string]int64
	handleIndex map[string]int64
	identities  map[string]auth.Identity
	seq         int64
	identitySeq int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:       make(map[int64]auth.User),
		emailIndex:  make(map[string]int64),
		handleIndex: make(map[string]int64),
		identities:  make(map[string]auth.Identity),
	}
}

// Create stores the account.
func (r *MemoryRepository) Create(_ context.Context, nu auth.NewUser) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emailIndex[nu.Email]; exists {
		return auth.User{}, auth.ErrEmailExists
	}
	if _, exists := r.handleIndex[nu.Handle]; exists {
		return auth.User{}, auth.ErrHandleExists
	}
	r.seq++
	now := time.Now().UTC()
	user := auth.User{
		ID:           r.seq,
		Email:        nu.Email,
		DisplayName:  nu.DisplayName,
		Handle:       nu.Handle,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user.ID
	r.handleIndex[user.Handle] = user.ID
	return user, nil
}

// GetByEmail returns an account by email.
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.emailIndex[email]; ok {
		return r.users[id], true, nil
	}
	return auth.User{}, false, nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok, nil
}

// GetByHandle fetches by public handle.
func (r *MemoryRepository) GetByHandle(_ context.Context, handle string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.handleIndex[handle]; ok {
		return r.users[id], true, nil
	}
	return auth.User{}, false, nil
}

// UpdateProfile replaces the editable profile fields.
func (r *MemoryRepository) UpdateProfile(_ context.Context, id int64, displayName, bio string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return auth.User{}, errors.New("user not found")
	}
	user.DisplayName = displayName
	user.Bio = bio
	user.UpdatedAt = time.Now().UTC()
	r.users[id] = user
	return user, nil
}

// GetIdentity returns an identity by provider and subject.
func (r *MemoryRepository) GetIdentity(_ context.Context, provider, providerSubject string) (auth.Identity, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.identities[provider+":"+providerSubject]
	return identity, ok, nil
}

// GetIdentityByUser returns the user's identity for a provider.
func (r *MemoryRepository) GetIdentityByUser(_ context.Context, userID int64, provider string) (auth.Identity, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, identity := range r.identities {
		if identity.UserID == userID && identity.Provider == provider {
			return identity, true, nil
		}
	}
	return auth.Identity{}, false, nil
}

// UpsertIdentity stores or updates the identity mapping. An empty refresh
// token keeps the stored one.
func (r *MemoryRepository) UpsertIdentity(_ context.Context, identity auth.Identity) (auth.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if identity.UserID == 0 {
		return auth.Identity{}, errors.New("userID is required")
	}
	key := identity.Provider + ":" + identity.ProviderSubject
	now := time.Now().UTC()
	if existing, ok := r.identities[key]; ok {
		if identity.RefreshToken != "" {
			existing.RefreshToken = identity.RefreshToken
		}
		if identity.ProviderEmail != "" {
			existing.ProviderEmail = identity.ProviderEmail
		}
		existing.UpdatedAt = now
		r.identities[key] = existing
		return existing, nil
	}
	r.identitySeq++
	identity.ID = r.identitySeq
	identity.CreatedAt = now
	identity.UpdatedAt = now
	r.identities[key] = identity
	return identity, nil
}

// Search matches display name or handle, case-insensitively.
func (r *MemoryRepository) Search(_ context.Context, query string, limit int) ([]social.Member, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return r.collect(limit, func(u auth.User) bool {
		return strings.Contains(strings.ToLower(u.DisplayName), q) || strings.Contains(u.Handle, q)
	}), nil
}

// Newest lists the most recently created accounts.
func (r *MemoryRepository) Newest(_ context.Context, limit int) ([]social.Member, error) {
	return r.collect(limit, func(auth.User) bool { return true }), nil
}

// Member fetches a public member view.
func (r *MemoryRepository) Member(_ context.Context, id int64) (social.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return social.Member{}, false, nil
	}
	return toMember(user), true, nil
}

// collect returns matches newest first.
func (r *MemoryRepository) collect(limit int, match func(auth.User) bool) []social.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := make([]social.Member, 0)
	for _, id := range ids {
		if limit > 0 && len(out) == limit {
			break
		}
		if user := r.users[id]; match(user) {
			out = append(out, toMember(user))
		}
	}
	return out
}

func toMember(user auth.User) social.Member {
	return social.Member{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Handle:      user.Handle,
		Bio:         user.Bio,
	}
}

var (
	_ auth.Repository  = (*MemoryRepository)(nil)
	_ social.Directory = (*MemoryRepository)(nil)
)
