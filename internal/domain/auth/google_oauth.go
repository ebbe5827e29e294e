package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

const (
	googleProvider  = "google"
	googleIssuerURL = "https://accounts.google.com"
	googleRevokeURL = "https://oauth2.googleapis.com/revoke"
)

type googleClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
}

func (s *service) GoogleAuthURL(_ context.Context, state, codeChallenge string) (string, error) {
	cfg, err := s.googleOAuthConfig()
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	), nil
}

// GoogleCallback exchanges the authorization code, verifies the id token and
// signs the user in, creating an account on first use.
func (s *service) GoogleCallback(ctx context.Context, code, codeVerifier string) (LoginResponse, error) {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(codeVerifier) == "" {
		return LoginResponse{}, apperrors.Wrap("invalid_input", "missing oauth code or verifier", nil)
	}
	claims, refreshToken, err := s.exchangeGoogleCode(ctx, code, codeVerifier)
	if err != nil {
		return LoginResponse{}, err
	}

	identity, found, err := s.repo.GetIdentity(ctx, googleProvider, claims.Subject)
	if err != nil {
		return LoginResponse{}, apperrors.Wrap("auth_error", "failed to fetch identity", err)
	}
	var user User
	if found {
		if user, err = s.loadUser(ctx, identity.UserID); err != nil {
			return LoginResponse{}, err
		}
	} else {
		if user, err = s.createGoogleUser(ctx, claims); err != nil {
			return LoginResponse{}, err
		}
	}
	if !found || refreshToken != "" {
		if err := s.saveGoogleIdentity(ctx, user.ID, claims, refreshToken); err != nil {
			return LoginResponse{}, err
		}
	}
	return s.buildLoginResponse(user)
}

func (s *service) exchangeGoogleCode(ctx context.Context, code, codeVerifier string) (googleClaims, string, error) {
	cfg, err := s.googleOAuthConfig()
	if err != nil {
		return googleClaims{}, "", err
	}
	token, err := cfg.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", codeVerifier))
	if err != nil {
		return googleClaims{}, "", apperrors.Wrap("oauth_exchange_failed", "failed to exchange oauth code", err)
	}
	rawIDToken, _ := token.Extra("id_token").(string)
	if rawIDToken == "" {
		return googleClaims{}, "", apperrors.Wrap("oauth_exchange_failed", "missing id_token in oauth response", nil)
	}
	claims, err := s.verifyGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		return googleClaims{}, "", err
	}
	switch {
	case claims.Subject == "":
		return googleClaims{}, "", apperrors.Wrap("invalid_token", "missing google subject", nil)
	case !claims.EmailVerified:
		return googleClaims{}, "", apperrors.Wrap("invalid_credentials", "google account email not verified", nil)
	}
	return claims, token.RefreshToken, nil
}

func (s *service) createGoogleUser(ctx context.Context, claims googleClaims) (User, error) {
	email, err := normalizeEmail(claims.Email)
	if err != nil {
		return User{}, apperrors.Wrap("invalid_input", "invalid email address", err)
	}
	_, exists, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, apperrors.Wrap("auth_error", "failed to check existing user", err)
	}
	if exists {
		return User{}, apperrors.Wrap("account_linking_disabled", "an account with this email already exists", nil)
	}
	passwordHash, err := unusablePasswordHash()
	if err != nil {
		return User{}, apperrors.Wrap("auth_error", "failed to generate password hash", err)
	}
	user, err := s.createUser(ctx, email, googleDisplayName(claims), passwordHash)
	if err != nil {
		return User{}, err
	}
	s.logger.Info("account created from google sign-in", "user_id", user.ID, "handle", user.Handle)
	return user, nil
}

// Logout revokes the stored Google refresh token, if any. Revocation problems
// are logged and do not fail the logout.
func (s *service) Logout(ctx context.Context, userID int64) error {
	identity, found, err := s.repo.GetIdentityByUser(ctx, userID, googleProvider)
	if err != nil {
		return apperrors.Wrap("auth_error", "failed to fetch identity", err)
	}
	if !found || identity.RefreshToken == "" {
		return nil
	}
	refreshToken, err := decryptToken(s.cfg.Google.TokenEncryptionKey, identity.RefreshToken)
	if err != nil {
		s.logger.Warn("failed to decrypt google refresh token", "user_id", userID, "error", err)
		return nil
	}
	if err := revokeGoogleToken(ctx, refreshToken); err != nil {
		s.logger.Warn("failed to revoke google refresh token", "user_id", userID, "error", err)
	}
	return nil
}

func (s *service) googleOAuthConfig() (*oauth2.Config, error) {
	g := s.cfg.Google
	if !g.Enabled() {
		return nil, apperrors.Wrap("auth_not_configured", "google sign-in is not configured", nil)
	}
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		RedirectURL:  g.RedirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

func (s *service) verifyGoogleIDToken(ctx context.Context, rawToken string) (googleClaims, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuerURL)
	if err != nil {
		return googleClaims{}, apperrors.Wrap("auth_error", "failed to initialize oidc provider", err)
	}
	idToken, err := provider.Verifier(&oidc.Config{ClientID: s.cfg.Google.ClientID}).Verify(ctx, rawToken)
	if err != nil {
		return googleClaims{}, apperrors.Wrap("invalid_token", "failed to verify id token", err)
	}
	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil {
		return googleClaims{}, apperrors.Wrap("invalid_token", "failed to parse id token claims", err)
	}
	if claims.Email == "" {
		return googleClaims{}, apperrors.Wrap("invalid_token", "missing email in id token", nil)
	}
	return claims, nil
}

func (s *service) saveGoogleIdentity(ctx context.Context, userID int64, claims googleClaims, refreshToken string) error {
	sealed, err := encryptToken(s.cfg.Google.TokenEncryptionKey, refreshToken)
	if err != nil {
		return apperrors.Wrap("auth_error", "failed to encrypt refresh token", err)
	}
	_, err = s.repo.UpsertIdentity(ctx, Identity{
		UserID:          userID,
		Provider:        googleProvider,
		ProviderSubject: claims.Subject,
		ProviderEmail:   claims.Email,
		RefreshToken:    sealed,
	})
	if err != nil {
		return apperrors.Wrap("auth_error", "failed to persist identity", err)
	}
	return nil
}

// googleDisplayName picks the first usable name from the Google profile.
func googleDisplayName(claims googleClaims) string {
	local, _, _ := strings.Cut(claims.Email, "@")
	for _, candidate := range []string{claims.Name, claims.GivenName, local} {
		runes := []rune(strings.TrimSpace(candidate))
		if len(runes) > maxDisplayNameRunes {
			runes = runes[:maxDisplayNameRunes]
		}
		if name, err := normalizeDisplayName(string(runes)); err == nil {
			return name
		}
	}
	return "Closet Fan"
}

// unusablePasswordHash gives Google-only accounts a random bcrypt hash so
// password login never matches.
func unusablePasswordHash() (string, error) {
	raw, err := randomString(32)
	if err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func randomString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CodeChallengeFromVerifier computes the S256 PKCE code challenge.
func CodeChallengeFromVerifier(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// NewOAuthState returns a state, code verifier and code challenge for PKCE.
func NewOAuthState() (state, codeVerifier, codeChallenge string, err error) {
	if state, err = randomString(32); err != nil {
		return "", "", "", err
	}
	if codeVerifier, err = randomString(32); err != nil {
		return "", "", "", err
	}
	return state, codeVerifier, CodeChallengeFromVerifier(codeVerifier), nil
}

func revokeGoogleToken(ctx context.Context, refreshToken string) error {
	form := url.Values{"token": {refreshToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleRevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := (&http.Client{Timeout: 10 * time.Second}).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("google revoke returned status %d", resp.StatusCode)
	}
	return nil
}
