package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"

	"github.com/gin-gonic/gin"
)

// UpdateUserProfileStatus reviews the role-specific profile of a user.
// The target's role decides which profile table is updated.
func UpdateUserProfileStatus(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.normalize()

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	svc := services.NewProfileReviewService(config.DB)

	var status string
	var profile interface{}
	switch user.Role {
	case models.RoleBlogger:
		p, err := svc.ApplyBloggerStatus(userID, req.Status, auth.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		status, profile = p.Status, p
	case models.RoleVocalist:
		p, err := svc.ApplyVocalistStatus(userID, req.Status, auth.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		status, profile = p.Status, p
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "User role has no reviewable profile"})
		return
	}

	message := services.ProfileStatusMessage(user.Role, status)
	services.Notify(config.DB, user.ID, "Profile Status Update", message, "info")
	services.SendStatusEmail(user.Email, message, req.Comment)

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile status updated successfully",
		"status":  status,
		"profile": profile,
	})
}

// GetAllBloggerProfiles lists blogger profiles with their account details.
func GetAllBloggerProfiles(c *gin.Context) {
	var profiles []models.BloggerProfile
	if err := config.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogger profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetAllVocalistProfiles lists vocalist profiles with their account details.
func GetAllVocalistProfiles(c *gin.Context) {
	var profiles []models.VocalistProfile
	if err := config.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vocalist profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetAllUsers lists user accounts, optionally filtered by role.
func GetAllUsers(c *gin.Context) {
	query := config.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
