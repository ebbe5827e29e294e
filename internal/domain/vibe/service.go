package vibe

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
	"github.com/yanqian/smartcloset/pkg/util"
)

const (
	maxNameRunes  = 24
	maxEmojiRunes = 8
)

// Service manages the vibes a user can pick from.
type Service interface {
	List(ctx context.Context, userID int64) ([]Vibe, error)
	Create(ctx context.Context, userID int64, req CreateRequest) (Vibe, error)
	Delete(ctx context.Context, userID int64, id string) error
	Resolve(ctx context.Context, userID int64, identifiers []string) ([]Vibe, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService constructs a Service instance.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "vibe.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

func (s *service) List(ctx context.Context, userID int64) ([]Vibe, error) {
	custom, err := s.repo.ListCustom(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load vibes", err)
	}
	return append(Defaults(), custom...), nil
}

func (s *service) Create(ctx context.Context, userID int64, req CreateRequest) (Vibe, error) {
	name, emoji, err := validateCustom(req)
	if err != nil {
		return Vibe{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	existing, err := s.List(ctx, userID)
	if err != nil {
		return Vibe{}, err
	}
	for _, v := range existing {
		if strings.EqualFold(v.Name, name) {
			return Vibe{}, apperrors.Wrap("invalid_input", "a vibe with this name already exists", nil)
		}
	}
	v := Vibe{
		ID:        CustomPrefix + s.newID(),
		Name:      name,
		Emoji:     emoji,
		Custom:    true,
		CreatedAt: s.now(),
	}
	if err := s.repo.SaveCustom(ctx, userID, v); err != nil {
		return Vibe{}, apperrors.Wrap("storage_error", "failed to save vibe", err)
	}
	s.logger.Info("custom vibe created", "user_id", userID, "vibe_id", v.ID)
	return v, nil
}

func (s *service) Delete(ctx context.Context, userID int64, id string) error {
	if !IsCustomID(id) {
		return apperrors.Wrap("invalid_input", "only custom vibes can be deleted", nil)
	}
	removed, err := s.repo.DeleteCustom(ctx, userID, id)
	if err != nil {
		return apperrors.Wrap("storage_error", "failed to delete vibe", err)
	}
	if !removed {
		return apperrors.Wrap("not_found", "vibe not found", nil)
	}
	return nil
}

// Resolve maps selected identifiers to known vibes in the order given, skipping
// unknown entries and duplicates.
func (s *service) Resolve(ctx context.Context, userID int64, identifiers []string) ([]Vibe, error) {
	all, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Vibe, 0, len(identifiers))
	seen := make(map[string]struct{})
	for _, raw := range identifiers {
		sel := NewSelection(raw)
		for _, v := range all {
			if !Matches(sel, v) {
				continue
			}
			if _, dup := seen[v.ID]; !dup {
				seen[v.ID] = struct{}{}
				out = append(out, v)
			}
			break
		}
	}
	return out, nil
}

func validateCustom(req CreateRequest) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	emoji := strings.TrimSpace(req.Emoji)
	switch {
	case name == "":
		return "", "", errors.New("vibe name cannot be empty")
	case emoji == "":
		return "", "", errors.New("vibe emoji cannot be empty")
	case utf8.RuneCountInString(name) > maxNameRunes:
		return "", "", errors.New("vibe name is too long")
	case utf8.RuneCountInString(emoji) > maxEmojiRunes:
		return "", "", errors.New("vibe emoji is too long")
	}
	return name, emoji, nil
}
