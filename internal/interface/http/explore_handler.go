package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchUsers finds members by name or handle; an empty query returns suggestions.
func (h *Handler) SearchUsers(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	cards, err := h.socialSvc.Search(c.Request.Context(), viewerID, c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": cards})
}

// UserProfile returns a member's public profile.
func (h *Handler) UserProfile(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	profile, err := h.socialSvc.Profile(c.Request.Context(), viewerID, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ToggleFollow follows or unfollows a member.
func (h *Handler) ToggleFollow(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	result, err := h.socialSvc.ToggleFollow(c.Request.Context(), viewerID, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
