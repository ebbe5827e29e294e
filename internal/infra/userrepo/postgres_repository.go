package userrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/social"
)

const uniqueViolation = "23505"

const userColumns = `id, email, display_name, handle, bio, password_hash, created_at, updated_at`

// PostgresRepository persists accounts in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new account row.
func (r *PostgresRepository) Create(ctx context.Context, nu auth.NewUser) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, display_name, handle, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns, nu.Email, nu.DisplayName, nu.Handle, nu.PasswordHash)
	user, err := scanUser(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "handle") {
			return auth.User{}, auth.ErrHandleExists
		}
		return auth.User{}, auth.ErrEmailExists
	}
	return user, err
}

// GetByEmail fetches an account by email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (auth.User, bool, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByID fetches by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (auth.User, bool, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByHandle fetches by public handle.
func (r *PostgresRepository) GetByHandle(ctx context.Context, handle string) (auth.User, bool, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE handle = $1`, handle)
}

// UpdateProfile replaces the editable profile fields.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, displayName, bio string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET display_name = $2, bio = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, displayName, bio)
	return scanUser(row)
}

// GetIdentity returns an identity by provider and subject.
func (r *PostgresRepository) GetIdentity(ctx context.Context, provider, providerSubject string) (auth.Identity, bool, error) {
	return r.getIdentity(ctx, `
		SELECT id, user_id, provider, provider_subject, provider_email, refresh_token, created_at, updated_at
		FROM user_identities
		WHERE provider = $1 AND provider_subject = $2
	`, provider, providerSubject)
}

// GetIdentityByUser returns the user's identity for a provider.
func (r *PostgresRepository) GetIdentityByUser(ctx context.Context, userID int64, provider string) (auth.Identity, bool, error) {
	return r.getIdentity(ctx, `
		SELECT id, user_id, provider, provider_subject, provider_email, refresh_token, created_at, updated_at
		FROM user_identities
		WHERE user_id = $1 AND provider = $2
	`, userID, provider)
}

// UpsertIdentity stores or updates the identity mapping. An empty refresh
// token keeps the stored one.
func (r *PostgresRepository) UpsertIdentity(ctx context.Context, identity auth.Identity) (auth.Identity, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_identities (user_id, provider, provider_subject, provider_email, refresh_token)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_subject) DO UPDATE SET
			provider_email = COALESCE(NULLIF(EXCLUDED.provider_email, ''), user_identities.provider_email),
			refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), user_identities.refresh_token),
			updated_at = NOW()
		RETURNING id, user_id, provider, provider_subject, provider_email, refresh_token, created_at, updated_at
	`, identity.UserID, identity.Provider, identity.ProviderSubject, identity.ProviderEmail, identity.RefreshToken)
	return scanIdentity(row)
}

// Search matches display name or handle, case-insensitively.
func (r *PostgresRepository) Search(ctx context.Context, query string, limit int) ([]social.Member, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT id, display_name, handle, bio
		FROM users
		WHERE LOWER(display_name) LIKE $1 OR handle LIKE $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

// Newest lists the most recently created accounts.
func (r *PostgresRepository) Newest(ctx context.Context, limit int) ([]social.Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, display_name, handle, bio
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

// Member fetches a public member view.
func (r *PostgresRepository) Member(ctx context.Context, id int64) (social.Member, bool, error) {
	var m social.Member
	err := r.pool.QueryRow(ctx, `SELECT id, display_name, handle, bio FROM users WHERE id = $1`, id).
		Scan(&m.ID, &m.DisplayName, &m.Handle, &m.Bio)
	if errors.Is(err, pgx.ErrNoRows) {
		return social.Member{}, false, nil
	}
	if err != nil {
		return social.Member{}, false, err
	}
	return m, true, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (auth.User, bool, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.User{}, false, nil
	}
	if err != nil {
		return auth.User{}, false, err
	}
	return user, true, nil
}

func (r *PostgresRepository) getIdentity(ctx context.Context, query string, args ...any) (auth.Identity, bool, error) {
	identity, err := scanIdentity(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.Identity{}, false, nil
	}
	if err != nil {
		return auth.Identity{}, false, err
	}
	return identity, true, nil
}

func scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	if err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.Handle, &user.Bio, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return auth.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}

func scanIdentity(row pgx.Row) (auth.Identity, error) {
	var id auth.Identity
	err := row.Scan(&id.ID, &id.UserID, &id.Provider, &id.ProviderSubject, &id.ProviderEmail, &id.RefreshToken, &id.CreatedAt, &id.UpdatedAt)
	return id, err
}

func collectMembers(rows pgx.Rows) ([]social.Member, error) {
	defer rows.Close()
	out := make([]social.Member, 0)
	for rows.Next() {
		var m social.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.Handle, &m.Bio); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var (
	_ auth.Repository  = (*PostgresRepository)(nil)
	_ social.Directory = (*PostgresRepository)(nil)
)
