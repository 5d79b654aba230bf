package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetTrend returns the top technologies ranked by interest count.
func (h *Handler) GetTrend(c *gin.Context) {
	techs, err := h.store.Trend(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err, "Failed to compute trend")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tecs": techs})
}

// SuggestTechs returns technologies whose name contains the q substring.
func (h *Handler) SuggestTechs(c *gin.Context) {
	techs, err := h.store.SuggestTechs(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch suggestions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tecs": techs})
}

// GetTechRoster returns the users linked to a technology, split by kind.
func (h *Handler) GetTechRoster(c *gin.Context) {
	techID, err := strconv.ParseUint(c.Param("techID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid technology ID"})
		return
	}

	roster, err := h.store.TechRoster(c.Request.Context(), uint(techID))
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch roster")
		return
	}

	c.JSON(http.StatusOK, roster)
}
