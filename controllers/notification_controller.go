package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyNotifications lists the caller's notifications, newest first.
func GetMyNotifications(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)
	skip, limit := pagination(c, 20)

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", auth.UserID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", auth.UserID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unread_count": unread})
}

// GetUnreadNotificationCount returns just the unread total for the badge.
func GetUnreadNotificationCount(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", auth.UserID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{"unread_count": unread})
}

// MarkNotificationRead marks one of the caller's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, auth.UserID).
		Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead marks every unread notification of the caller.
func MarkAllNotificationsRead(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", auth.UserID, false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
