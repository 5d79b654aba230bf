package handlers

import (
	"net/http"
	"strconv"

	"github.com/studycircle/studycircle/api/middleware"

	"github.com/gin-gonic/gin"
)

// Timeline lists every study session, newest first.
func (h *Handler) Timeline(c *gin.Context) {
	sessions, err := h.store.Timeline(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch timeline")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// LikeSession marks the caller as wanting to attend the study session.
// Liking twice is reported as success either way.
func (h *Handler) LikeSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("sessionID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	uid := c.GetString(middleware.ContextUIDKey)
	already, err := h.store.Like(c.Request.Context(), uid, uint(sessionID))
	if err != nil {
		h.writeStoreError(c, err, "Failed to like session")
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Already liked"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Liked successfully"})
}

// UnlikeSession withdraws the caller's like. A missing like is reported
// informationally, not as an error.
func (h *Handler) UnlikeSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("sessionID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	uid := c.GetString(middleware.ContextUIDKey)
	found, err := h.store.Unlike(c.Request.Context(), uid, uint(sessionID))
	if err != nil {
		h.writeStoreError(c, err, "Failed to unlike session")
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Like not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Not liked successfully"})
}
