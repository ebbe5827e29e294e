package followstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/smartcloset/internal/domain/social"
)

// ValkeyStore keeps the follow graph as two sets per member in Valkey.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "closet"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Follow(ctx context.Context, followerID, followeeID int64) error {
	return s.apply(ctx,
		s.client.B().Sadd().Key(s.followingKey(followerID)).Member(id(followeeID)).Build(),
		s.client.B().Sadd().Key(s.followersKey(followeeID)).Member(id(followerID)).Build(),
	)
}

func (s *ValkeyStore) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.apply(ctx,
		s.client.B().Srem().Key(s.followingKey(followerID)).Member(id(followeeID)).Build(),
		s.client.B().Srem().Key(s.followersKey(followeeID)).Member(id(followerID)).Build(),
	)
}

func (s *ValkeyStore) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	cmd := s.client.B().Sismember().Key(s.followingKey(followerID)).Member(id(followeeID)).Build()
	return s.client.Do(ctx, cmd).AsBool()
}

func (s *ValkeyStore) FollowerCount(ctx context.Context, userID int64) (int, error) {
	return s.card(ctx, s.followersKey(userID))
}

func (s *ValkeyStore) FollowingCount(ctx context.Context, userID int64) (int, error) {
	return s.card(ctx, s.followingKey(userID))
}

func (s *ValkeyStore) card(ctx context.Context, key string) (int, error) {
	n, err := s.client.Do(ctx, s.client.B().Scard().Key(key).Build()).AsInt64()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return int(n), nil
}

// apply sends both edge updates in one MULTI/EXEC round trip.
func (s *ValkeyStore) apply(ctx context.Context, forward, reverse valkey.Completed) error {
	results := s.client.DoMulti(ctx,
		s.client.B().Multi().Build(),
		forward,
		reverse,
		s.client.B().Exec().Build(),
	)
	for _, res := range results {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ValkeyStore) followingKey(userID int64) string {
	return fmt.Sprintf("%s:following:%d", s.prefix, userID)
}

func (s *ValkeyStore) followersKey(userID int64) string {
	return fmt.Sprintf("%s:followers:%d", s.prefix, userID)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

var _ social.FollowStore = (*ValkeyStore)(nil)
