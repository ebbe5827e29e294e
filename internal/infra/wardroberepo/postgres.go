package wardroberepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

// PostgresRepository persists closet items in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const itemColumns = `id, user_id, name, image_ref, category, style, warmth, weather, created_at`

func (r *PostgresRepository) Create(ctx context.Context, item wardrobe.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO closet_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, item.UserID, item.Name, item.ImageRef, item.Category, item.Style, item.Warmth, item.Weather, item.CreatedAt)
	return err
}

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM closet_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, userID int64, id string) (wardrobe.Item, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM closet_items
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return wardrobe.Item{}, false, nil
	}
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return item, true, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM closet_items WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, userID int64) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `DELETE FROM closet_items WHERE user_id = $1 RETURNING `+itemColumns, userID)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

func (r *PostgresRepository) Count(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM closet_items WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func collectItems(rows pgx.Rows) ([]wardrobe.Item, error) {
	defer rows.Close()
	var out []wardrobe.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanItem(row pgx.Row) (wardrobe.Item, error) {
	var item wardrobe.Item
	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.ImageRef, &item.Category, &item.Style, &item.Warmth, &item.Weather, &item.CreatedAt)
	if err != nil {
		return wardrobe.Item{}, err
	}
	item.CreatedAt = item.CreatedAt.UTC()
	return item, nil
}

var _ wardrobe.Repository = (*PostgresRepository)(nil)
