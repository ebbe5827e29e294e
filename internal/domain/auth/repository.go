package auth

import "context"

// Repository abstracts account persistence.
type Repository interface {
	Create(ctx context.Context, user NewUser) (User, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByHandle(ctx context.Context, handle string) (User, bool, error)
	UpdateProfile(ctx context.Context, id int64, displayName, bio string) (User, error)
	GetIdentity(ctx context.Context, provider, providerSubject string) (Identity, bool, error)
	GetIdentityByUser(ctx context.Context, userID int64, provider string) (Identity, bool, error)
	UpsertIdentity(ctx context.Context, identity Identity) (Identity, error)
}
