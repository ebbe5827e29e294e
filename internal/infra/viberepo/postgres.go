package viberepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/smartcloset/internal/domain/vibe"
)

// PostgresRepository persists custom vibes in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListCustom returns the user's vibes in creation order.
func (r *PostgresRepository) ListCustom(ctx context.Context, userID int64) ([]vibe.Vibe, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, emoji, created_at
		FROM custom_vibes
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vibe.Vibe
	for rows.Next() {
		var (
			v       vibe.Vibe
			created time.Time
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Emoji, &created); err != nil {
			return nil, err
		}
		v.Custom = true
		v.CreatedAt = created.UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// SaveCustom inserts a vibe row.
func (r *PostgresRepository) SaveCustom(ctx context.Context, userID int64, v vibe.Vibe) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO custom_vibes (id, user_id, name, emoji, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, userID, v.Name, v.Emoji, v.CreatedAt)
	return err
}

// DeleteCustom removes a vibe owned by the user.
func (r *PostgresRepository) DeleteCustom(ctx context.Context, userID int64, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM custom_vibes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var _ vibe.Repository = (*PostgresRepository)(nil)
