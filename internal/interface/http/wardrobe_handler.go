package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

// WardrobeCatalog lists the attribute catalogs and closet sections.
func (h *Handler) WardrobeCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.wardrobeSvc.Catalog())
}

// ListItems returns the caller's items, newest first.
func (h *Handler) ListItems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.wardrobeSvc.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem stores a new clothing item.
func (h *Handler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req wardrobe.AddRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.wardrobeSvc.Add(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItem returns one item.
func (h *Handler) GetItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	item, err := h.wardrobeSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes one item and its photo.
func (h *Handler) DeleteItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.wardrobeSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearItems wipes the caller's closet.
func (h *Handler) ClearItems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	removed, err := h.wardrobeSvc.Clear(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// Closet returns items grouped into browsing sections.
func (h *Handler) Closet(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	sections, err := h.wardrobeSvc.Closet(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// UploadImage accepts a multipart "file" field and returns the stored imageRef.
func (h *Handler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxImageBytes+uploadOverheadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large", "image is too large", err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, h.opts.MaxImageBytes+1))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
		return
	}
	stored, err := h.wardrobeSvc.UploadImage(c.Request.Context(), userID, wardrobe.UploadImageRequest{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  data,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ServeImage streams one of the caller's photos.
func (h *Handler) ServeImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	img, err := h.wardrobeSvc.OpenImage(c.Request.Context(), userID, key)
	if err != nil {
		fail(c, err)
		return
	}
	defer img.Body.Close()
	c.DataFromReader(http.StatusOK, -1, img.MimeType, img.Body, map[string]string{
		"Cache-Control": "private, max-age=3600",
	})
}
