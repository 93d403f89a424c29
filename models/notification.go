package models

import "time"

// Notification is created for submission owners when their review status
// changes. Type is one of info|success|warning|error.
type Notification struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	Title     string    `gorm:"column:title" json:"title"`
	Message   string    `gorm:"column:message" json:"message"`
	Type      string    `gorm:"column:type" json:"type"`
	IsRead    bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
