package models

import "time"

// StatusHistory records every applied status transition across entity kinds
// (kalam, blog, blogger, vocalist, studio_request, remote_request).
type StatusHistory struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	EntityKind string    `gorm:"column:entity_kind" json:"entity_kind"`
	EntityID   int       `gorm:"column:entity_id" json:"entity_id"`
	OldStatus  *string   `gorm:"column:old_status" json:"old_status"`
	NewStatus  string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy  int       `gorm:"column:changed_by" json:"changed_by"`
	Comment    *string   `gorm:"column:comment" json:"comment"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (StatusHistory) TableName() string {
	return "status_history"
}
