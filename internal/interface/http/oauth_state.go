package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookieName = "closet_oauth"
	oauthStateCookiePath = "/api/v1/auth/google"
	oauthStateMaxAge     = 300
)

// oauthState is round-tripped through a short lived cookie between the
// Google redirect and its callback.
type oauthState struct {
	State        string `json:"s"`
	CodeVerifier string `json:"v"`
}

func (s oauthState) encode() string {
	data, _ := json.Marshal(s)
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeOAuthState(value string) (oauthState, bool) {
	if value == "" {
		return oauthState{}, false
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return oauthState{}, false
	}
	var payload oauthState
	if err := json.Unmarshal(data, &payload); err != nil {
		return oauthState{}, false
	}
	if payload.State == "" || payload.CodeVerifier == "" {
		return oauthState{}, false
	}
	return payload, true
}

func setOAuthStateCookie(c *gin.Context, state oauthState) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state.encode(), oauthStateMaxAge, oauthStateCookiePath, "", c.Request.TLS != nil, true)
}

func clearOAuthStateCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, "", -1, oauthStateCookiePath, "", c.Request.TLS != nil, true)
}

func readOAuthStateCookie(c *gin.Context) (oauthState, bool) {
	value, err := c.Cookie(oauthStateCookieName)
	if err != nil {
		return oauthState{}, false
	}
	return decodeOAuthState(value)
}
