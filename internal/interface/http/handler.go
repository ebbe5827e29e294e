package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/social"
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
)

const uploadOverheadBytes = 64 << 10

// Options carries transport level settings that are not owned by a domain service.
type Options struct {
	PostLoginRedirectURL string
	MaxImageBytes        int64
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc     auth.Service
	weatherSvc  weather.Service
	outfitSvc   outfit.Service
	wardrobeSvc wardrobe.Service
	vibeSvc     vibe.Service
	socialSvc   social.Service
	opts        Options
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	authSvc auth.Service,
	weatherSvc weather.Service,
	outfitSvc outfit.Service,
	wardrobeSvc wardrobe.Service,
	vibeSvc vibe.Service,
	socialSvc social.Service,
	opts Options,
	logger *slog.Logger,
) *Handler {
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = 8 << 20
	}
	return &Handler{
		authSvc:     authSvc,
		weatherSvc:  weatherSvc,
		outfitSvc:   outfitSvc,
		wardrobeSvc: wardrobeSvc,
		vibeSvc:     vibeSvc,
		socialSvc:   socialSvc,
		opts:        opts,
		logger:      logger.With("component", "http.handler"),
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "malformed JSON body", err))
		return false
	}
	return true
}

func pathUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "user id must be a positive integer", err))
		return 0, false
	}
	return id, true
}
