package services

import (
	"log"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// Notify creates a notification for a user. It is best-effort: workflow
// mutations never fail because a notification could not be written.
func Notify(db *gorm.DB, userID int, title, message, notifType string) {
	if notifType == "" {
		notifType = "info"
	}

	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}
