package services

import (
	"log"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// recordStatusHistory appends a transition record. It is best-effort: the
// status change it documents has already been committed.
func recordStatusHistory(db *gorm.DB, kind EntityKind, entityID int, oldStatus, newStatus string, actorID int, comment string) {
	row := models.StatusHistory{
		EntityKind: string(kind),
		EntityID:   entityID,
		NewStatus:  newStatus,
		ChangedBy:  actorID,
		CreatedAt:  time.Now(),
	}
	if oldStatus != "" {
		row.OldStatus = &oldStatus
	}
	if comment != "" {
		row.Comment = &comment
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("Failed to record status history for %s %d: %v", kind, entityID, err)
	}
}
