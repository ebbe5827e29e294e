package auth

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

func TestService_RegisterLoginAndRefresh(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())

	view, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "Style.Star@Example.com",
		Password:    "pass1234",
		DisplayName: "  Style   Star ",
	})
	require.NoError(t, err)
	require.Equal(t, "style.star@example.com", view.Email)
	require.Equal(t, "Style Star", view.DisplayName)
	require.Equal(t, "style.star", view.Handle)
	require.NotZero(t, view.ID)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "style.star@example.com", Password: "pass1234"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, view.Email, resp.User.Email)

	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	require.Equal(t, view.ID, claims.UserID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, refreshed.Token)
	require.Equal(t, "style.star", refreshed.User.Handle)
}

func TestService_DuplicateEmail(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Email: "user@example.com", Password: "pass1234", DisplayName: "One"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{Email: "USER@example.com", Password: "pass12345", DisplayName: "Two"})
	require.True(t, apperrors.IsCode(err, "email_exists"))
}

func TestService_RegisterValidation(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	cases := []RegisterRequest{
		{Email: "not-an-email", Password: "pass1234", DisplayName: "Name"},
		{Email: "a@example.com", Password: "short", DisplayName: "Name"},
		{Email: "a@example.com", Password: "pass1234", DisplayName: "   "},
		{Email: "a@example.com", Password: "pass1234", DisplayName: strings.Repeat("x", 41)},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		require.True(t, apperrors.IsCode(err, "invalid_input"), "%+v", req)
	}
}

func TestService_HandleCollisionGetsSuffix(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	first, err := svc.Register(context.Background(), RegisterRequest{Email: "sam@one.com", Password: "pass1234", DisplayName: "Sam"})
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), RegisterRequest{Email: "sam@two.com", Password: "pass1234", DisplayName: "Sam"})
	require.NoError(t, err)
	third, err := svc.Register(context.Background(), RegisterRequest{Email: "Sam@three.com", Password: "pass1234", DisplayName: "Sam"})
	require.NoError(t, err)

	require.Equal(t, "sam", first.Handle)
	require.Equal(t, "sam2", second.Handle)
	require.Equal(t, "sam3", third.Handle)
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@example.com", Password: "pass1234", DisplayName: "A"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "wrongpass"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))
}

func TestService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@example.com", Password: "pass1234", DisplayName: "A"})
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), resp.RefreshToken)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = svc.Refresh(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = svc.ValidateToken(context.Background(), "")
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_ExpiredToken(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@example.com", Password: "pass1234", DisplayName: "A"})
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "pass1234"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
}

func TestService_UpdateProfile(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	view, err := svc.Register(context.Background(), RegisterRequest{Email: "a@example.com", Password: "pass1234", DisplayName: "A"})
	require.NoError(t, err)

	bio := "  Minimalist wardrobe, maximal coffee. "
	updated, err := svc.UpdateProfile(context.Background(), view.ID, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "A", updated.DisplayName)
	require.Equal(t, "Minimalist wardrobe, maximal coffee.", updated.Bio)

	name := "Ava Closet"
	updated, err = svc.UpdateProfile(context.Background(), view.ID, ProfileUpdate{DisplayName: &name})
	require.NoError(t, err)
	require.Equal(t, "Ava Closet", updated.DisplayName)
	require.Equal(t, "Minimalist wardrobe, maximal coffee.", updated.Bio)

	long := strings.Repeat("b", 161)
	_, err = svc.UpdateProfile(context.Background(), view.ID, ProfileUpdate{Bio: &long})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.UpdateProfile(context.Background(), 999, ProfileUpdate{Bio: &bio})
	require.True(t, apperrors.IsCode(err, "user_not_found"))
}

func TestHandleFromEmail(t *testing.T) {
	cases := map[string]string{
		"Jane.Doe@example.com":  "jane.doe",
		"first+tag@example.com": "firsttag",
		"under_score@x.io":      "under_score",
		"ÉLODIE-99@example.fr":  "lodie99",
		"+++@example.com":       "user",
		"no-at-sign":            "noatsign",
	}
	for in, want := range cases {
		require.Equal(t, want, HandleFromEmail(in), in)
	}
}

func TestGoogleDisplayName(t *testing.T) {
	require.Equal(t, "Ada Lovelace", googleDisplayName(googleClaims{Name: "Ada Lovelace", GivenName: "Ada"}))
	require.Equal(t, "Ada", googleDisplayName(googleClaims{GivenName: "Ada"}))
	require.Equal(t, "ada.l", googleDisplayName(googleClaims{Email: "ada.l@example.com"}))
	require.Len(t, []rune(googleDisplayName(googleClaims{Name: strings.Repeat("n", 60)})), maxDisplayNameRunes)
}

func TestGoogleAuthURL(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.GoogleAuthURL(context.Background(), "state", "challenge")
	require.True(t, apperrors.IsCode(err, "auth_not_configured"))

	svc.cfg.Google = GoogleConfig{
		ClientID:           "client",
		ClientSecret:       "secret",
		RedirectURL:        "http://localhost:8080/api/v1/auth/google/callback",
		TokenEncryptionKey: "0123456789abcdef",
	}
	raw, err := svc.GoogleAuthURL(context.Background(), "state-1", "challenge-1")
	require.NoError(t, err)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	require.Equal(t, "state-1", q.Get("state"))
	require.Equal(t, "challenge-1", q.Get("code_challenge"))
	require.Equal(t, "S256", q.Get("code_challenge_method"))
	require.Equal(t, "offline", q.Get("access_type"))
}

func TestGoogleCallbackRequiresCodeAndVerifier(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	_, err := svc.GoogleCallback(context.Background(), "", "verifier")
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestNewOAuthState(t *testing.T) {
	state, verifier, challenge, err := NewOAuthState()
	require.NoError(t, err)
	require.NotEmpty(t, state)
	require.NotEqual(t, state, verifier)
	require.Equal(t, CodeChallengeFromVerifier(verifier), challenge)
	// RFC 7636 appendix B
	require.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", CodeChallengeFromVerifier("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"))
}

func TestTokenSealing(t *testing.T) {
	key := "0123456789abcdef0123456789abcdef"
	sealed, err := encryptToken(key, "refresh-token")
	require.NoError(t, err)
	require.NotContains(t, sealed, "refresh-token")

	plain, err := decryptToken(key, sealed)
	require.NoError(t, err)
	require.Equal(t, "refresh-token", plain)

	_, err = decryptToken("fedcba9876543210fedcba9876543210", sealed)
	require.Error(t, err)

	_, err = encryptToken("short", "x")
	require.Error(t, err)

	empty, err := encryptToken("bad", "")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestLogoutWithoutIdentityIsNoop(t *testing.T) {
	svc := newServiceUnderTest(newMemoryRepo())
	require.NoError(t, svc.Logout(context.Background(), 42))
}

func newServiceUnderTest(repo Repository) *service {
	return NewService(Config{
		Secret:          "test-secret",
		TokenTTL:        time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, repo, newTestLogger()).(*service)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memoryRepo struct {
	users      map[int64]User
	identities map[string]Identity
	seq        int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]User), identities: make(map[string]Identity)}
}

func (m *memoryRepo) Create(_ context.Context, nu NewUser) (User, error) {
	for _, u := range m.users {
		if u.Email == nu.Email {
			return User{}, ErrEmailExists
		}
		if u.Handle == nu.Handle {
			return User{}, ErrHandleExists
		}
	}
	m.seq++
	user := User{
		ID:           m.seq,
		Email:        nu.Email,
		DisplayName:  nu.DisplayName,
		Handle:       nu.Handle,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (User, bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (User, bool, error) {
	user, ok := m.users[id]
	return user, ok, nil
}

func (m *memoryRepo) GetByHandle(_ context.Context, handle string) (User, bool, error) {
	for _, user := range m.users {
		if user.Handle == handle {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func (m *memoryRepo) UpdateProfile(_ context.Context, id int64, displayName, bio string) (User, error) {
	user := m.users[id]
	user.DisplayName = displayName
	user.Bio = bio
	m.users[id] = user
	return user, nil
}

func (m *memoryRepo) GetIdentity(_ context.Context, provider, subject string) (Identity, bool, error) {
	identity, ok := m.identities[provider+":"+subject]
	return identity, ok, nil
}

func (m *memoryRepo) GetIdentityByUser(_ context.Context, userID int64, provider string) (Identity, bool, error) {
	for _, identity := range m.identities {
		if identity.UserID == userID && identity.Provider == provider {
			return identity, true, nil
		}
	}
	return Identity{}, false, nil
}

func (m *memoryRepo) UpsertIdentity(_ context.Context, identity Identity) (Identity, error) {
	m.identities[identity.Provider+":"+identity.ProviderSubject] = identity
	return identity, nil
}
