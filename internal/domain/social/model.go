package social

import (
	"context"
	"strconv"
)

// Member is the public view of an account.
type Member struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	Bio         string `json:"bio"`
}

// Card is a search or suggestion result.
type Card struct {
	Member
	Following bool `json:"following"`
}

// Stats holds profile counters and their display labels.
type Stats struct {
	Items          int    `json:"items"`
	Followers      int    `json:"followers"`
	Following      int    `json:"following"`
	FollowersLabel string `json:"followersLabel"`
	FollowingLabel string `json:"followingLabel"`
}

// Profile is a public profile as seen by a viewer.
type Profile struct {
	Member
	Stats     Stats `json:"stats"`
	Following bool  `json:"following"`
	Self      bool  `json:"self"`
}

// FollowResult reports the state after a toggle.
type FollowResult struct {
	Following bool   `json:"following"`
	Followers int    `json:"followers"`
	Label     string `json:"followersLabel"`
}

// Directory looks up members.
type Directory interface {
	// Search matches the query as a case-insensitive substring of display
	// name or handle.
	Search(ctx context.Context, query string, limit int) ([]Member, error)
	// Newest lists recently joined members.
	Newest(ctx context.Context, limit int) ([]Member, error)
	Member(ctx context.Context, id int64) (Member, bool, error)
}

// FollowStore persists the follow graph.
type FollowStore interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	FollowerCount(ctx context.Context, userID int64) (int, error)
	FollowingCount(ctx context.Context, userID int64) (int, error)
}

// ItemCounter counts closet items for a member.
type ItemCounter interface {
	Count(ctx context.Context, userID int64) (int, error)
}

// Config drives explore limits.
type Config struct {
	SearchLimit     int
	SuggestionLimit int
}

// CompactCount renders a counter with one decimal K/M suffix, e.g. 12.5K or
// 1.2M. Values under a thousand are printed as-is.
func CompactCount(n int) string {
	switch {
	case n >= 1_000_000:
		return tenths(n, 1_000_000) + "M"
	case n >= 1_000:
		return tenths(n, 1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// tenths formats n/unit with one decimal, rounding half up.
func tenths(n, unit int) string {
	t := (n*10 + unit/2) / unit
	return strconv.Itoa(t/10) + "." + strconv.Itoa(t%10)
}
