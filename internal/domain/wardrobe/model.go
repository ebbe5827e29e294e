package wardrobe

import (
	"context"
	"io"
	"time"
)

// Item is a single piece of clothing in a user's closet.
type Item struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	ImageRef  string    `json:"imageRef"`
	Category  string    `json:"category,omitempty"`
	Style     string    `json:"style,omitempty"`
	Warmth    string    `json:"warmth,omitempty"`
	Weather   string    `json:"weather,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddRequest is the payload for adding an item.
type AddRequest struct {
	Name     string `json:"name"`
	ImageRef string `json:"imageRef"`
	Category string `json:"category"`
	Style    string `json:"style"`
	Warmth   string `json:"warmth"`
	Weather  string `json:"weather"`
}

// ClosetSection groups items for browsing.
type ClosetSection struct {
	Section
	Items []Item `json:"items"`
}

// UploadImageRequest carries a photo submission.
type UploadImageRequest struct {
	Filename string
	MimeType string
	Content  []byte
}

// StoredImage captures persisted blob metadata.
type StoredImage struct {
	Key      string `json:"imageRef"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	ETag     string `json:"etag,omitempty"`
}

// Image is an opened photo. Callers must close Body.
type Image struct {
	Body     io.ReadCloser
	MimeType string
}

// Config drives upload limits.
type Config struct {
	MaxImageBytes int64
}

// Repository persists closet items.
type Repository interface {
	Create(ctx context.Context, item Item) error
	List(ctx context.Context, userID int64) ([]Item, error)
	Get(ctx context.Context, userID int64, id string) (Item, bool, error)
	Delete(ctx context.Context, userID int64, id string) (bool, error)
	Clear(ctx context.Context, userID int64) ([]Item, error)
	Count(ctx context.Context, userID int64) (int, error)
}

// ImageStore abstracts blob storage for item photos (R2 or memory).
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredImage, error)
	Get(ctx context.Context, key string) (Image, error)
	Delete(ctx context.Context, key string) error
}
