package vibe

import "context"

// Repository persists user created vibes.
type Repository interface {
	ListCustom(ctx context.Context, userID int64) ([]Vibe, error)
	SaveCustom(ctx context.Context, userID int64, v Vibe) error
	DeleteCustom(ctx context.Context, userID int64, id string) (bool, error)
}
