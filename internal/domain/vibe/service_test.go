package vibe

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

func TestServiceCreateAndList(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())

	created, err := svc.Create(context.Background(), 7, CreateRequest{Name: "  Cozy ", Emoji: "🧸"})
	require.NoError(t, err)
	require.Equal(t, "custom-fixed-id", created.ID)
	require.Equal(t, "Cozy", created.Name)
	require.True(t, created.Custom)

	all, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, all, 9)
	require.Equal(t, "Confident", all[0].Name)
	require.Equal(t, created, all[8])

	others, err := svc.List(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, others, 8)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())

	_, err := svc.Create(context.Background(), 1, CreateRequest{Name: "Cozy"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Create(context.Background(), 1, CreateRequest{Emoji: "🧸"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Create(context.Background(), 1, CreateRequest{Name: "elegant", Emoji: "🧸"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceDelete(t *testing.T) {
	repo := newMemoryRepo()
	svc := newServiceUnderTest(repo)

	created, err := svc.Create(context.Background(), 1, CreateRequest{Name: "Sporty", Emoji: "🏃"})
	require.NoError(t, err)

	require.True(t, apperrors.IsCode(svc.Delete(context.Background(), 1, "1"), "invalid_input"))
	require.True(t, apperrors.IsCode(svc.Delete(context.Background(), 2, created.ID), "not_found"))
	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))
	require.Empty(t, repo.items[1])
}

func TestServiceResolve(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	created, err := svc.Create(context.Background(), 1, CreateRequest{Name: "Cozy", Emoji: "🧸"})
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), 1, []string{"Elegant", "4", "unknown", created.ID, "1"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, IDElegant, got[0].ID)
	require.Equal(t, created.ID, got[1].ID)
	require.Equal(t, IDConfident, got[2].ID)
}

func newServiceUnderTest(repo Repository) *service {
	return &service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: func() time.Time {
			return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		},
		newID: func() string { return "fixed-id" },
	}
}

type memoryRepo struct {
	items map[int64][]Vibe
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64][]Vibe)}
}

func (m *memoryRepo) ListCustom(_ context.Context, userID int64) ([]Vibe, error) {
	return append([]Vibe(nil), m.items[userID]...), nil
}

func (m *memoryRepo) SaveCustom(_ context.Context, userID int64, v Vibe) error {
	m.items[userID] = append(m.items[userID], v)
	return nil
}

func (m *memoryRepo) DeleteCustom(_ context.Context, userID int64, id string) (bool, error) {
	items := m.items[userID]
	for i, v := range items {
		if v.ID == id {
			m.items[userID] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
