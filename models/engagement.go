package models

import "time"

// BlogComment supports one level of nesting: replies carry the id of a
// top-level comment in parent_id and may not themselves be parents.
type BlogComment struct {
	ID            int       `gorm:"primaryKey;column:id" json:"id"`
	BlogID        int       `gorm:"column:blog_id" json:"blog_id"`
	UserID        int       `gorm:"column:user_id" json:"user_id"`
	ParentID      *int      `gorm:"column:parent_id" json:"parent_id"`
	CommentText   string    `gorm:"column:comment_text" json:"comment_text"`
	CommenterName string    `gorm:"column:commenter_name" json:"commenter_name"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogComment) TableName() string {
	return "blog_comments"
}

type BlogLike struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	BlogID    int       `gorm:"column:blog_id" json:"blog_id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}

type BlogView struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	BlogID    int       `gorm:"column:blog_id" json:"blog_id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogView) TableName() string {
	return "blog_views"
}

type BlogShare struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	BlogID    int       `gorm:"column:blog_id" json:"blog_id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	Platform  string    `gorm:"column:platform" json:"platform"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogShare) TableName() string {
	return "blog_shares"
}
