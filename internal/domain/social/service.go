package social

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

const (
	defaultSearchLimit     = 20
	defaultSuggestionLimit = 10
)

// Service powers the explore screen.
type Service interface {
	Search(ctx context.Context, viewerID int64, query string) ([]Card, error)
	Profile(ctx context.Context, viewerID, userID int64) (Profile, error)
	ToggleFollow(ctx context.Context, viewerID, userID int64) (FollowResult, error)
}

type service struct {
	cfg     Config
	members Directory
	follows FollowStore
	items   ItemCounter
	logger  *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, members Directory, follows FollowStore, items ItemCounter, logger *slog.Logger) Service {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = defaultSuggestionLimit
	}
	return &service{
		cfg:     cfg,
		members: members,
		follows: follows,
		items:   items,
		logger:  logger.With("component", "social.service"),
	}
}

// Search returns matching members, or suggestions when the query is blank.
// The viewer never appears in their own results.
func (s *service) Search(ctx context.Context, viewerID int64, query string) ([]Card, error) {
	query = strings.TrimSpace(query)
	var (
		found []Member
		err   error
	)
	// one extra so dropping the viewer still fills the page
	if query == "" {
		found, err = s.members.Newest(ctx, s.cfg.SuggestionLimit+1)
	} else {
		found, err = s.members.Search(ctx, query, s.cfg.SearchLimit+1)
	}
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to search members", err)
	}
	limit := s.cfg.SearchLimit
	if query == "" {
		limit = s.cfg.SuggestionLimit
	}
	cards := make([]Card, 0, len(found))
	for _, m := range found {
		if m.ID == viewerID {
			continue
		}
		if len(cards) == limit {
			break
		}
		following, err := s.follows.IsFollowing(ctx, viewerID, m.ID)
		if err != nil {
			return nil, apperrors.Wrap("storage_error", "failed to load follow state", err)
		}
		cards = append(cards, Card{Member: m, Following: following})
	}
	return cards, nil
}

func (s *service) Profile(ctx context.Context, viewerID, userID int64) (Profile, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	stats, err := s.stats(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	following := false
	if viewerID != userID {
		if following, err = s.follows.IsFollowing(ctx, viewerID, userID); err != nil {
			return Profile{}, apperrors.Wrap("storage_error", "failed to load follow state", err)
		}
	}
	return Profile{Member: member, Stats: stats, Following: following, Self: viewerID == userID}, nil
}

// ToggleFollow follows the member when not yet following, and unfollows otherwise.
func (s *service) ToggleFollow(ctx context.Context, viewerID, userID int64) (FollowResult, error) {
	if viewerID == 0 {
		return FollowResult{}, apperrors.Wrap("unauthorized", "missing user", nil)
	}
	if viewerID == userID {
		return FollowResult{}, apperrors.Wrap("invalid_input", "you cannot follow yourself", nil)
	}
	if _, err := s.member(ctx, userID); err != nil {
		return FollowResult{}, err
	}
	following, err := s.follows.IsFollowing(ctx, viewerID, userID)
	if err != nil {
		return FollowResult{}, apperrors.Wrap("storage_error", "failed to load follow state", err)
	}
	if following {
		err = s.follows.Unfollow(ctx, viewerID, userID)
	} else {
		err = s.follows.Follow(ctx, viewerID, userID)
	}
	if err != nil {
		return FollowResult{}, apperrors.Wrap("storage_error", "failed to update follow", err)
	}
	followers, err := s.follows.FollowerCount(ctx, userID)
	if err != nil {
		return FollowResult{}, apperrors.Wrap("storage_error", "failed to count followers", err)
	}
	s.logger.Info("follow toggled", "user_id", viewerID, "target_id", userID, "following", !following)
	return FollowResult{Following: !following, Followers: followers, Label: CompactCount(followers)}, nil
}

func (s *service) member(ctx context.Context, userID int64) (Member, error) {
	member, found, err := s.members.Member(ctx, userID)
	if err != nil {
		return Member{}, apperrors.Wrap("storage_error", "failed to load member", err)
	}
	if !found {
		return Member{}, apperrors.Wrap("not_found", "user not found", nil)
	}
	return member, nil
}

func (s *service) stats(ctx context.Context, userID int64) (Stats, error) {
	items, err := s.items.Count(ctx, userID)
	if err != nil {
		return Stats{}, apperrors.Wrap("storage_error", "failed to count items", err)
	}
	followers, err := s.follows.FollowerCount(ctx, userID)
	if err != nil {
		return Stats{}, apperrors.Wrap("storage_error", "failed to count followers", err)
	}
	following, err := s.follows.FollowingCount(ctx, userID)
	if err != nil {
		return Stats{}, apperrors.Wrap("storage_error", "failed to count following", err)
	}
	return Stats{
		Items:          items,
		Followers:      followers,
		Following:      following,
		FollowersLabel: CompactCount(followers),
		FollowingLabel: CompactCount(following),
	}, nil
}
