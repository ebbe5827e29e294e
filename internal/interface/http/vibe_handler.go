package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/vibe"
)

// DefaultVibes lists the built-in vibes.
func (h *Handler) DefaultVibes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vibes": vibe.Defaults()})
}

// ListVibes lists built-in vibes followed by the caller's own.
func (h *Handler) ListVibes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	vibes, err := h.vibeSvc.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vibes": vibes})
}

// CreateVibe adds a custom vibe.
func (h *Handler) CreateVibe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req vibe.CreateRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.vibeSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteVibe removes a custom vibe.
func (h *Handler) DeleteVibe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.vibeSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
