package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/outfit"
)

// GenerateOutfit suggests outfits from the caller's closet.
func (h *Handler) GenerateOutfit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req outfit.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.outfitSvc.Generate(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviewOutfit runs the engine against an empty closet for signed-out visitors.
func (h *Handler) PreviewOutfit(c *gin.Context) {
	var req outfit.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.outfitSvc.Preview(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
