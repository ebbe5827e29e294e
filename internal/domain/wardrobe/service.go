package wardrobe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
	"github.com/yanqian/smartcloset/pkg/util"
)

const (
	maxNameRunes         = 60
	defaultMaxImageBytes = 8 << 20
	uncategorizedKey     = "other"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// Service manages a user's closet.
type Service interface {
	Add(ctx context.Context, userID int64, req AddRequest) (Item, error)
	List(ctx context.Context, userID int64) ([]Item, error)
	Closet(ctx context.Context, userID int64) ([]ClosetSection, error)
	Get(ctx context.Context, userID int64, id string) (Item, error)
	Delete(ctx context.Context, userID int64, id string) error
	Clear(ctx context.Context, userID int64) (int, error)
	UploadImage(ctx context.Context, userID int64, req UploadImageRequest) (StoredImage, error)
	OpenImage(ctx context.Context, userID int64, key string) (Image, error)
	Catalog() Catalog
	Count(ctx context.Context, userID int64) (int, error)
}

type service struct {
	cfg    Config
	repo   Repository
	images ImageStore
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, images ImageStore, logger *slog.Logger) Service {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = defaultMaxImageBytes
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		images: images,
		logger: logger.With("component", "wardrobe.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

func (s *service) Add(ctx context.Context, userID int64, req AddRequest) (Item, error) {
	if userID == 0 {
		return Item{}, apperrors.Wrap("unauthorized", "missing user", nil)
	}
	item, err := s.validate(req)
	if err != nil {
		return Item{}, err
	}
	item.ID = s.newID()
	item.UserID = userID
	item.CreatedAt = s.now()
	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, apperrors.Wrap("storage_error", "failed to save item", err)
	}
	s.logger.Info("closet item added", "user_id", userID, "item_id", item.ID, "category", item.Category)
	return item, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]Item, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load closet", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Closet groups items by section in catalog order. Items without a category
// land in a trailing section that only appears when it has content.
func (s *service) Closet(ctx context.Context, userID int64) ([]ClosetSection, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog := DefaultCatalog()
	out := make([]ClosetSection, 0, len(catalog.Sections)+1)
	index := make(map[string]int, len(catalog.Sections))
	for i, sec := range catalog.Sections {
		index[sec.Category] = i
		out = append(out, ClosetSection{Section: sec, Items: []Item{}})
	}
	var other []Item
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			other = append(other, item)
			continue
		}
		out[pos].Items = append(out[pos].Items, item)
	}
	if len(other) > 0 {
		out = append(out, ClosetSection{
			Section: Section{Title: "Other", Key: uncategorizedKey, Filters: []string{"All"}},
			Items:   other,
		})
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, userID int64, id string) (Item, error) {
	item, found, err := s.repo.Get(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Item{}, apperrors.Wrap("storage_error", "failed to load item", err)
	}
	if !found {
		return Item{}, apperrors.Wrap("not_found", "item not found", nil)
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, userID int64, id string) error {
	item, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	removed, err := s.repo.Delete(ctx, userID, item.ID)
	if err != nil {
		return apperrors.Wrap("storage_error", "failed to delete item", err)
	}
	if !removed {
		return apperrors.Wrap("not_found", "item not found", nil)
	}
	s.removeImage(ctx, userID, item.ImageRef)
	return nil
}

func (s *service) Clear(ctx context.Context, userID int64) (int, error) {
	removed, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return 0, apperrors.Wrap("storage_error", "failed to clear closet", err)
	}
	for _, item := range removed {
		s.removeImage(ctx, userID, item.ImageRef)
	}
	s.logger.Info("closet cleared", "user_id", userID, "items", len(removed))
	return len(removed), nil
}

func (s *service) UploadImage(ctx context.Context, userID int64, req UploadImageRequest) (StoredImage, error) {
	if userID == 0 {
		return StoredImage{}, apperrors.Wrap("unauthorized", "missing user", nil)
	}
	if len(req.Content) == 0 {
		return StoredImage{}, apperrors.Wrap("invalid_input", "image cannot be empty", nil)
	}
	if int64(len(req.Content)) > s.cfg.MaxImageBytes {
		return StoredImage{}, apperrors.Wrap("invalid_input", "image exceeds maximum allowed size", nil)
	}
	mime := http.DetectContentType(req.Content)
	ext, ok := imageExtensions[mime]
	if !ok {
		// sniffing does not know heic; trust the declared type for it
		if declared := strings.ToLower(strings.TrimSpace(req.MimeType)); declared == "image/heic" {
			mime, ext, ok = declared, imageExtensions[declared], true
		}
	}
	if !ok {
		return StoredImage{}, apperrors.Wrap("invalid_input", "unsupported image type", nil)
	}
	key := fmt.Sprintf("%s%s%s", userPrefix(userID), s.newID(), ext)
	stored, err := s.images.Put(ctx, key, req.Content, mime)
	if err != nil {
		return StoredImage{}, apperrors.Wrap("storage_error", "failed to store image", err)
	}
	s.logger.Info("closet image stored", "user_id", userID, "key", stored.Key, "size", stored.Size)
	return stored, nil
}

func (s *service) OpenImage(ctx context.Context, userID int64, key string) (Image, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if !ownsImage(userID, key) {
		return Image{}, apperrors.Wrap("not_found", "image not found", nil)
	}
	img, err := s.images.Get(ctx, key)
	if err != nil {
		return Image{}, apperrors.Wrap("not_found", "image not found", err)
	}
	return img, nil
}

func (s *service) Catalog() Catalog {
	return DefaultCatalog()
}

func (s *service) Count(ctx context.Context, userID int64) (int, error) {
	n, err := s.repo.Count(ctx, userID)
	if err != nil {
		return 0, apperrors.Wrap("storage_error", "failed to count items", err)
	}
	return n, nil
}

func (s *service) validate(req AddRequest) (Item, error) {
	item := Item{
		Name:     strings.TrimSpace(req.Name),
		ImageRef: strings.TrimSpace(req.ImageRef),
		Category: strings.TrimSpace(req.Category),
		Style:    strings.TrimSpace(req.Style),
		Warmth:   strings.TrimSpace(req.Warmth),
		Weather:  strings.TrimSpace(req.Weather),
	}
	switch {
	case item.Name == "":
		return Item{}, apperrors.Wrap("invalid_input", "item name cannot be empty", nil)
	case utf8.RuneCountInString(item.Name) > maxNameRunes:
		return Item{}, apperrors.Wrap("invalid_input", "item name is too long", nil)
	case item.ImageRef == "":
		return Item{}, apperrors.Wrap("invalid_input", "item photo is required", nil)
	}
	checks := []struct {
		field  string
		value  string
		values []string
	}{
		{"category", item.Category, categories},
		{"style", item.Style, styles},
		{"warmth", item.Warmth, warmth},
		{"weather", item.Weather, weather},
	}
	for _, c := range checks {
		if c.value != "" && !contains(c.values, c.value) {
			return Item{}, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown %s %q", c.field, c.value), nil)
		}
	}
	return item, nil
}

// removeImage deletes a stored photo owned by the user. External refs are left alone.
func (s *service) removeImage(ctx context.Context, userID int64, ref string) {
	if !ownsImage(userID, ref) {
		return
	}
	if err := s.images.Delete(ctx, ref); err != nil {
		s.logger.Warn("delete closet image failed", "key", ref, "error", err)
	}
}

func userPrefix(userID int64) string {
	return fmt.Sprintf("wardrobe/%d/", userID)
}

func ownsImage(userID int64, key string) bool {
	prefix := userPrefix(userID)
	return strings.HasPrefix(key, prefix) && len(key) > len(prefix) && !strings.Contains(key, "..")
}
