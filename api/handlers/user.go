package handlers

import (
	"net/http"
	"time"

	"github.com/studycircle/studycircle/api/middleware"
	"github.com/studycircle/studycircle/models"
	"github.com/studycircle/studycircle/store"

	"github.com/gin-gonic/gin"
)

// CreateUser bootstraps a User row for the authenticated caller. The id
// comes from the verified token, never from the request body.
func (h *Handler) CreateUser(c *gin.Context) {
	uid := c.GetString(middleware.ContextUIDKey)

	user, err := h.store.CreateUser(c.Request.Context(), uid)
	if err != nil {
		h.writeStoreError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser returns one user by id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers returns every user.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetProfile returns the profile display fields for one user.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.writeStoreError(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, user.ToProfileResponse())
}

type updateProfileRequest struct {
	SNSLink     string             `json:"sns_link"`
	Comment     string             `json:"comment"`
	JoinDate    string             `json:"join_date" binding:"required"`
	Department  string             `json:"department"`
	Interests   []uint             `json:"interests"`
	Expertises  []models.TechYears `json:"expertises"`
	Experiences []models.TechYears `json:"experiences"`
}

// UpdateProfile replaces the caller's profile fields and technology links
// in one transaction. Only the token holder may update their own profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userID")
	if c.GetString(middleware.ContextUIDKey) != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update another user's profile"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "join_date must be formatted as YYYY-MM-DD"})
		return
	}

	err = h.store.UpdateProfile(c.Request.Context(), userID, store.ProfileUpdate{
		SNSLink:     req.SNSLink,
		Comment:     req.Comment,
		JoinDate:    joinDate,
		Department:  req.Department,
		Interests:   req.Interests,
		Expertises:  req.Expertises,
		Experiences: req.Experiences,
	})
	if err != nil {
		h.writeStoreError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_accepted": true})
}
