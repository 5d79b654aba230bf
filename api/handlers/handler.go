package handlers

import (
	"errors"
	"net/http"

	"github.com/studycircle/studycircle/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the injected collaborators for every endpoint. No
// package-level state; main builds one and hands it to the router.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

func New(s *store.Store, log *zap.Logger) *Handler {
	return &Handler{store: s, log: log.Named("handlers")}
}

// writeStoreError maps the store's error taxonomy to HTTP: a conflict is
// the caller's data, a missing row is 404, everything else is a retryable
// server-side failure.
func (h *Handler) writeStoreError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicts with existing data"})
	default:
		h.log.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
