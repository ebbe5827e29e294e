package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/social"
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
	"github.com/yanqian/smartcloset/internal/infra/config"
	apperrors "github.com/yanqian/smartcloset/pkg/errors"
)

const testToken = "good-token"

func TestRouter_Healthz(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/healthz", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_SecuredRouteRequiresToken(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/wardrobe/items", "", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, "unauthorized", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])

	recorder = performRequest(server, http.MethodGet, "/api/v1/wardrobe/items", "", map[string]string{"Authorization": "Bearer expired"})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Equal(t, "invalid_token", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_CurrentWeather(t *testing.T) {
	svc := &stubWeather{
		currentFn: func(_ context.Context, loc weather.LocationRequest) weather.Reading {
			require.NotNil(t, loc.Latitude)
			require.NotNil(t, loc.Longitude)
			require.InDelta(t, 40.7, *loc.Latitude, 1e-9)
			require.InDelta(t, -74.0, *loc.Longitude, 1e-9)
			snap := weather.Fallback
			snap.TemperatureF = 31
			return weather.Reading{Snapshot: snap, Source: weather.SourceLive}
		},
	}
	server := newRouterUnderTest(t, services{weather: svc})

	recorder := performRequest(server, http.MethodGet, "/api/v1/weather/current?lat=40.7&lon=-74.0", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Weather          weather.Snapshot `json:"weather"`
		Source           weather.Source   `json:"source"`
		TemperatureColor string           `json:"temperatureColor"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, 31, body.Weather.TemperatureF)
	require.Equal(t, weather.SourceLive, body.Source)
	require.Equal(t, outfit.TemperatureColor(31), body.TemperatureColor)
}

func TestRouter_CurrentWeatherRejectsNonNumericCoordinates(t *testing.T) {
	server := newRouterUnderTest(t, services{weather: &stubWeather{}})

	recorder := performRequest(server, http.MethodGet, "/api/v1/weather/current?lat=north&lon=1", "", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_GenerateOutfitUsesCaller(t *testing.T) {
	svc := &stubOutfit{
		generateFn: func(_ context.Context, userID int64, req outfit.GenerateRequest) (outfit.GenerateResponse, error) {
			require.Equal(t, int64(7), userID)
			require.Equal(t, []string{"1", "custom-abc"}, req.Vibes)
			return outfit.GenerateResponse{
				Weather:     weather.Fallback,
				Suggestions: []outfit.Suggestion{{Category: "Layers", Items: []string{"Light jacket"}, Tip: "Mild out"}},
			}, nil
		},
	}
	server := newRouterUnderTest(t, services{outfit: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/outfits/generate", `{"vibes":["1","custom-abc"]}`, authHeader())
	require.Equal(t, http.StatusOK, recorder.Code)

	var got outfit.GenerateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Suggestions, 1)
	require.Equal(t, "Layers", got.Suggestions[0].Category)
}

func TestRouter_GenerateOutfitInventoryFailure(t *testing.T) {
	svc := &stubOutfit{
		generateFn: func(context.Context, int64, outfit.GenerateRequest) (outfit.GenerateResponse, error) {
			return outfit.GenerateResponse{}, apperrors.Wrap("inventory_error", "closet is unavailable", io.ErrUnexpectedEOF)
		},
	}
	server := newRouterUnderTest(t, services{outfit: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/outfits/generate", `{}`, authHeader())
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	body := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "inventory_error", body["error"]["code"])
	require.Equal(t, "closet is unavailable", body["error"]["message"])
}

func TestRouter_PreviewOutfitIsRetriedOnServerError(t *testing.T) {
	calls := 0
	svc := &stubOutfit{
		previewFn: func(_ context.Context, req outfit.GenerateRequest) (outfit.GenerateResponse, error) {
			calls++
			require.Equal(t, []string{"5"}, req.Vibes)
			if calls == 1 {
				return outfit.GenerateResponse{}, apperrors.Wrap("storage_error", "temporary failure", nil)
			}
			return outfit.GenerateResponse{Weather: weather.Fallback}, nil
		},
	}
	server := newRouterUnderTest(t, services{outfit: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/outfits/preview", `{"vibes":["5"]}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 2, calls)
}

func TestRouter_WardrobeWritesAreNotRetried(t *testing.T) {
	calls := 0
	svc := &stubWardrobe{
		addFn: func(context.Context, int64, wardrobe.AddRequest) (wardrobe.Item, error) {
			calls++
			return wardrobe.Item{}, apperrors.Wrap("storage_error", "failed to save item", nil)
		},
	}
	server := newRouterUnderTest(t, services{wardrobe: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/wardrobe/items", `{"name":"Coat","imageRef":"x"}`, authHeader())
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, 1, calls)
}

func TestRouter_RegisterConflict(t *testing.T) {
	svc := &stubAuth{
		registerFn: func(_ context.Context, req auth.RegisterRequest) (auth.UserView, error) {
			require.Equal(t, "ava@example.com", req.Email)
			return auth.UserView{}, apperrors.Wrap("email_exists", "email already registered", auth.ErrEmailExists)
		},
	}
	server := newRouterUnderTest(t, services{auth: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/auth/register", `{"email":"ava@example.com","password":"secret123","displayName":"Ava"}`, nil)
	require.Equal(t, http.StatusConflict, recorder.Code)
	require.Equal(t, "email_exists", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_RegisterInvalidJSON(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/auth/register", `{"email":42}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", body["error"]["code"])
	require.NotEmpty(t, body["error"]["message"])
}

func TestRouter_UpdateMe(t *testing.T) {
	svc := &stubAuth{
		updateProfileFn: func(_ context.Context, userID int64, req auth.ProfileUpdate) (auth.UserView, error) {
			require.Equal(t, int64(7), userID)
			require.NotNil(t, req.Bio)
			require.Nil(t, req.DisplayName)
			return auth.UserView{ID: userID, Bio: *req.Bio}, nil
		},
	}
	server := newRouterUnderTest(t, services{auth: svc})

	recorder := performRequest(server, http.MethodPatch, "/api/v1/me", `{"bio":"Vintage denim only"}`, authHeader())
	require.Equal(t, http.StatusOK, recorder.Code)

	var got auth.UserView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Vintage denim only", got.Bio)
}

func TestRouter_GoogleCallbackRejectsStateMismatch(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	cookie := oauthState{State: "expected", CodeVerifier: "verifier"}.encode()
	headers := map[string]string{"Cookie": oauthStateCookieName + "=" + cookie}
	recorder := performRequest(server, http.MethodGet, "/api/v1/auth/google/callback?state=other&code=abc", "", headers)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_state", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_GoogleCallbackPassesVerifier(t *testing.T) {
	svc := &stubAuth{
		googleCallbackFn: func(_ context.Context, code, verifier string) (auth.LoginResponse, error) {
			require.Equal(t, "abc", code)
			require.Equal(t, "verifier", verifier)
			return auth.LoginResponse{Token: "t", RefreshToken: "r"}, nil
		},
	}
	server := newRouterUnderTest(t, services{auth: svc})

	cookie := oauthState{State: "expected", CodeVerifier: "verifier"}.encode()
	headers := map[string]string{"Cookie": oauthStateCookieName + "=" + cookie}
	recorder := performRequest(server, http.MethodGet, "/api/v1/auth/google/callback?state=expected&code=abc", "", headers)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got auth.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "t", got.Token)
}

func TestRouter_UploadImage(t *testing.T) {
	svc := &stubWardrobe{
		uploadFn: func(_ context.Context, userID int64, req wardrobe.UploadImageRequest) (wardrobe.StoredImage, error) {
			require.Equal(t, int64(7), userID)
			require.Equal(t, "coat.png", req.Filename)
			require.Equal(t, []byte("pixels"), req.Content)
			return wardrobe.StoredImage{Key: "wardrobe/7/abc.png", Size: int64(len(req.Content)), MimeType: "image/png"}, nil
		},
	}
	server := newRouterUnderTest(t, services{wardrobe: svc})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "coat.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("pixels"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	headers := authHeader()
	headers["Content-Type"] = writer.FormDataContentType()
	recorder := performRequest(server, http.MethodPost, "/api/v1/wardrobe/images", buf.String(), headers)
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"imageRef":"wardrobe/7/abc.png"`)
}

func TestRouter_UploadImageRequiresFile(t *testing.T) {
	server := newRouterUnderTest(t, services{wardrobe: &stubWardrobe{}})

	headers := authHeader()
	headers["Content-Type"] = "application/json"
	recorder := performRequest(server, http.MethodPost, "/api/v1/wardrobe/images", `{}`, headers)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_ServeImageStreamsBody(t *testing.T) {
	svc := &stubWardrobe{
		openFn: func(_ context.Context, userID int64, key string) (wardrobe.Image, error) {
			require.Equal(t, "wardrobe/7/abc.png", key)
			return wardrobe.Image{Body: io.NopCloser(strings.NewReader("pixels")), MimeType: "image/png"}, nil
		},
	}
	server := newRouterUnderTest(t, services{wardrobe: svc})

	recorder := performRequest(server, http.MethodGet, "/api/v1/wardrobe/images/wardrobe/7/abc.png", "", authHeader())
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	require.Equal(t, "pixels", recorder.Body.String())
}

func TestRouter_ItemNotFound(t *testing.T) {
	svc := &stubWardrobe{
		getFn: func(_ context.Context, _ int64, id string) (wardrobe.Item, error) {
			require.Equal(t, "missing", id)
			return wardrobe.Item{}, apperrors.Wrap("not_found", "item not found", nil)
		},
	}
	server := newRouterUnderTest(t, services{wardrobe: svc})

	recorder := performRequest(server, http.MethodGet, "/api/v1/wardrobe/items/missing", "", authHeader())
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_DeleteVibe(t *testing.T) {
	var deleted string
	svc := &stubVibe{
		deleteFn: func(_ context.Context, _ int64, id string) error {
			deleted = id
			return nil
		},
	}
	server := newRouterUnderTest(t, services{vibe: svc})

	recorder := performRequest(server, http.MethodDelete, "/api/v1/vibes/custom-123", "", authHeader())
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "custom-123", deleted)
}

func TestRouter_DefaultVibesArePublic(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/vibes/defaults", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Vibes []vibe.Vibe `json:"vibes"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Vibes, 8)
}

func TestRouter_ExploreProfileRejectsBadID(t *testing.T) {
	server := newRouterUnderTest(t, services{social: &stubSocial{}})

	recorder := performRequest(server, http.MethodGet, "/api/v1/explore/users/abc", "", authHeader())
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_ToggleFollow(t *testing.T) {
	svc := &stubSocial{
		toggleFn: func(_ context.Context, viewerID, userID int64) (social.FollowResult, error) {
			require.Equal(t, int64(7), viewerID)
			require.Equal(t, int64(12), userID)
			return social.FollowResult{Following: true, Followers: 1, Label: "1"}, nil
		},
	}
	server := newRouterUnderTest(t, services{social: svc})

	recorder := performRequest(server, http.MethodPost, "/api/v1/explore/users/12/follow", "", authHeader())
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"following":true,"followers":1,"followersLabel":"1"}`, recorder.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, services{})

	recorder := performRequest(server, http.MethodOptions, "/api/v1/me", "", map[string]string{"Origin": "http://localhost:8081"})
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "http://localhost:8081", recorder.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"))

	now = now.Add(3 * time.Second)
	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
}

func TestRetryPolicy(t *testing.T) {
	policy := newRetryPolicy(config.RetryConfig{MaxAttempts: 3, BaseBackoff: 100 * time.Millisecond, Exclude: []string{"/api/v1/wardrobe"}})

	require.True(t, policy.applies(httptest.NewRequest(http.MethodPost, "/api/v1/outfits/preview", nil)))
	require.False(t, policy.applies(httptest.NewRequest(http.MethodPost, "/api/v1/wardrobe/images", nil)))
	require.False(t, policy.applies(httptest.NewRequest(http.MethodGet, "/api/v1/outfits/preview", nil)))

	require.Equal(t, time.Duration(0), policy.backoff(1))
	require.Equal(t, 100*time.Millisecond, policy.backoff(2))
	require.Equal(t, 200*time.Millisecond, policy.backoff(3))
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		"invalid_input":       http.StatusBadRequest,
		"invalid_credentials": http.StatusUnauthorized,
		"forbidden":           http.StatusForbidden,
		"user_not_found":      http.StatusNotFound,
		"handle_exists":       http.StatusConflict,
		"auth_not_configured": http.StatusServiceUnavailable,
		"storage_error":       http.StatusInternalServerError,
		"":                    http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, statusFor(code), code)
	}
}

func TestOAuthStateRoundTrip(t *testing.T) {
	encoded := oauthState{State: "s1", CodeVerifier: "v1"}.encode()
	got, ok := decodeOAuthState(encoded)
	require.True(t, ok)
	require.Equal(t, "s1", got.State)
	require.Equal(t, "v1", got.CodeVerifier)

	_, ok = decodeOAuthState("not base64!")
	require.False(t, ok)
	_, ok = decodeOAuthState(oauthState{State: "s1"}.encode())
	require.False(t, ok)
}

type services struct {
	auth     *stubAuth
	weather  *stubWeather
	outfit   *stubOutfit
	wardrobe *stubWardrobe
	vibe     *stubVibe
	social   *stubSocial
}

func newRouterUnderTest(t *testing.T, svc services) *http.Server {
	t.Helper()
	if svc.auth == nil {
		svc.auth = &stubAuth{}
	}
	if svc.weather == nil {
		svc.weather = &stubWeather{}
	}
	if svc.outfit == nil {
		svc.outfit = &stubOutfit{}
	}
	if svc.wardrobe == nil {
		svc.wardrobe = &stubWardrobe{}
	}
	if svc.vibe == nil {
		svc.vibe = &stubVibe{}
	}
	if svc.social == nil {
		svc.social = &stubSocial{}
	}
	handler := NewHandler(svc.auth, svc.weather, svc.outfit, svc.wardrobe, svc.vibe, svc.social, Options{MaxImageBytes: 1 << 10}, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"https://closet.example.com", "http://localhost:8081"},
			Retry: config.RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				Exclude:     []string{"/api/v1/auth", "/api/v1/wardrobe", "/api/v1/vibes", "/api/v1/explore"},
			},
		},
	}
	return NewRouter(cfg, handler, svc.auth)
}

func performRequest(server *http.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubAuth struct {
	auth.Service
	registerFn       func(ctx context.Context, req auth.RegisterRequest) (auth.UserView, error)
	updateProfileFn  func(ctx context.Context, userID int64, req auth.ProfileUpdate) (auth.UserView, error)
	googleCallbackFn func(ctx context.Context, code, verifier string) (auth.LoginResponse, error)
}

func (s *stubAuth) ValidateToken(_ context.Context, token string) (auth.Claims, error) {
	if token != testToken {
		return auth.Claims{}, apperrors.Wrap("invalid_token", "token expired", nil)
	}
	return auth.Claims{UserID: 7, Email: "ava@example.com", TokenType: "access"}, nil
}

func (s *stubAuth) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserView, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuth) UpdateProfile(ctx context.Context, userID int64, req auth.ProfileUpdate) (auth.UserView, error) {
	return s.updateProfileFn(ctx, userID, req)
}

func (s *stubAuth) GoogleCallback(ctx context.Context, code, verifier string) (auth.LoginResponse, error) {
	return s.googleCallbackFn(ctx, code, verifier)
}

type stubWeather struct {
	currentFn func(ctx context.Context, loc weather.LocationRequest) weather.Reading
}

func (s *stubWeather) Current(ctx context.Context, loc weather.LocationRequest) weather.Reading {
	if s.currentFn != nil {
		return s.currentFn(ctx, loc)
	}
	return weather.Reading{Snapshot: weather.Fallback, Source: weather.SourceFallback}
}

type stubOutfit struct {
	generateFn func(ctx context.Context, userID int64, req outfit.GenerateRequest) (outfit.GenerateResponse, error)
	previewFn  func(ctx context.Context, req outfit.GenerateRequest) (outfit.GenerateResponse, error)
}

func (s *stubOutfit) Generate(ctx context.Context, userID int64, req outfit.GenerateRequest) (outfit.GenerateResponse, error) {
	return s.generateFn(ctx, userID, req)
}

func (s *stubOutfit) Preview(ctx context.Context, req outfit.GenerateRequest) (outfit.GenerateResponse, error) {
	return s.previewFn(ctx, req)
}

type stubWardrobe struct {
	wardrobe.Service
	addFn    func(ctx context.Context, userID int64, req wardrobe.AddRequest) (wardrobe.Item, error)
	getFn    func(ctx context.Context, userID int64, id string) (wardrobe.Item, error)
	uploadFn func(ctx context.Context, userID int64, req wardrobe.UploadImageRequest) (wardrobe.StoredImage, error)
	openFn   func(ctx context.Context, userID int64, key string) (wardrobe.Image, error)
}

func (s *stubWardrobe) Add(ctx context.Context, userID int64, req wardrobe.AddRequest) (wardrobe.Item, error) {
	return s.addFn(ctx, userID, req)
}

func (s *stubWardrobe) Get(ctx context.Context, userID int64, id string) (wardrobe.Item, error) {
	return s.getFn(ctx, userID, id)
}

func (s *stubWardrobe) UploadImage(ctx context.Context, userID int64, req wardrobe.UploadImageRequest) (wardrobe.StoredImage, error) {
	return s.uploadFn(ctx, userID, req)
}

func (s *stubWardrobe) OpenImage(ctx context.Context, userID int64, key string) (wardrobe.Image, error) {
	return s.openFn(ctx, userID, key)
}

type stubVibe struct {
	vibe.Service
	deleteFn func(ctx context.Context, userID int64, id string) error
}

func (s *stubVibe) Delete(ctx context.Context, userID int64, id string) error {
	return s.deleteFn(ctx, userID, id)
}

type stubSocial struct {
	social.Service
	toggleFn func(ctx context.Context, viewerID, userID int64) (social.FollowResult, error)
}

func (s *stubSocial) ToggleFollow(ctx context.Context, viewerID, userID int64) (social.FollowResult, error) {
	return s.toggleFn(ctx, viewerID, userID)
}
