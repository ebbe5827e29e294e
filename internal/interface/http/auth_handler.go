package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/auth"
)

// Register creates an account with e-mail and password.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login exchanges credentials for an access and refresh token pair.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh issues a new token pair from a refresh token.
func (h *Handler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLogin starts the Google sign-in redirect with a PKCE challenge.
func (h *Handler) GoogleLogin(c *gin.Context) {
	state, verifier, challenge, err := auth.NewOAuthState()
	if err != nil {
		fail(c, err)
		return
	}
	target, err := h.authSvc.GoogleAuthURL(c.Request.Context(), state, challenge)
	if err != nil {
		fail(c, err)
		return
	}
	setOAuthStateCookie(c, oauthState{State: state, CodeVerifier: verifier})
	c.Redirect(http.StatusFound, target)
}

// GoogleCallback completes Google sign-in. With a post-login redirect configured
// the tokens are handed to the client in the URL fragment, otherwise as JSON.
func (h *Handler) GoogleCallback(c *gin.Context) {
	saved, ok := readOAuthStateCookie(c)
	clearOAuthStateCookie(c)
	if !ok || saved.State != c.Query("state") {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_state", "sign-in session expired, please try again", nil))
		return
	}
	if reason := c.Query("error"); reason != "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "oauth_denied", reason, nil))
		return
	}
	code := c.Query("code")
	if code == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "authorization code is required", nil))
		return
	}
	resp, err := h.authSvc.GoogleCallback(c.Request.Context(), code, saved.CodeVerifier)
	if err != nil {
		fail(c, err)
		return
	}
	if h.opts.PostLoginRedirectURL == "" {
		c.JSON(http.StatusOK, resp)
		return
	}
	fragment := url.Values{}
	fragment.Set("token", resp.Token)
	fragment.Set("refreshToken", resp.RefreshToken)
	c.Redirect(http.StatusFound, h.opts.PostLoginRedirectURL+"#"+fragment.Encode())
}

// Me returns the caller's profile.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe edits display name and bio.
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req auth.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout revokes the caller's linked provider tokens. Access tokens simply expire.
func (h *Handler) Logout(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
