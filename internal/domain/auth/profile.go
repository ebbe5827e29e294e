package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxDisplayNameRunes = 40
	maxBioRunes         = 160
	maxHandleLen        = 30
	handleAttempts      = 50
)

// HandleFromEmail derives the default public handle from an address:
// the lower-cased local part with everything outside [a-z0-9._] removed.
func HandleFromEmail(email string) string {
	local := strings.ToLower(strings.TrimSpace(email))
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	var b strings.Builder
	for _, r := range local {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	handle := b.String()
	if len(handle) > maxHandleLen {
		handle = handle[:maxHandleLen]
	}
	if handle == "" {
		handle = "user"
	}
	return handle
}

// availableHandle returns base, or base with the first free numeric suffix.
func (s *service) availableHandle(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 2; i <= handleAttempts+1; i++ {
		_, taken, err := s.repo.GetByHandle(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", errors.New("no free handle")
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(strings.ToLower(raw))
	if email == "" {
		return "", errors.New("email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}
	return email, nil
}

func normalizeDisplayName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", errors.New("display name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxDisplayNameRunes {
		return "", fmt.Errorf("display name cannot exceed %d characters", maxDisplayNameRunes)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", errors.New("display name contains invalid characters")
		}
	}
	return name, nil
}

func normalizeBio(raw string) (string, error) {
	bio := strings.TrimSpace(raw)
	if utf8.RuneCountInString(bio) > maxBioRunes {
		return "", fmt.Errorf("bio cannot exceed %d characters", maxBioRunes)
	}
	return bio, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func toView(user User) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Handle:      user.Handle,
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
	}
}
