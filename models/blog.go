package models

import "time"

// BlogSubmission is a guest blog post together with its review state.
// Tags are stored as a JSON-encoded string array.
type BlogSubmission struct {
	ID                   int        `gorm:"primaryKey;column:id" json:"id"`
	UserID               int        `gorm:"column:user_id" json:"user_id"`
	Title                string     `gorm:"column:title" json:"title"`
	Excerpt              string     `gorm:"column:excerpt" json:"excerpt"`
	FeaturedImageURL     *string    `gorm:"column:featured_image_url" json:"featured_image_url"`
	Content              string     `gorm:"column:content" json:"content"`
	Category             string     `gorm:"column:category" json:"category"`
	Tags                 string     `gorm:"column:tags" json:"tags"`
	Language             string     `gorm:"column:language" json:"language"`
	Status               string     `gorm:"column:status" json:"status"`
	AdminComments        *string    `gorm:"column:admin_comments" json:"admin_comments"`
	EditorNotes          *string    `gorm:"column:editor_notes" json:"editor_notes"`
	ScheduledPublishDate *time.Time `gorm:"column:scheduled_publish_date" json:"scheduled_publish_date"`
	SEOMetaTitle         *string    `gorm:"column:seo_meta_title" json:"seo_meta_title"`
	SEOMetaDescription   *string    `gorm:"column:seo_meta_description" json:"seo_meta_description"`
	PublishedAt          *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt            time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (BlogSubmission) TableName() string {
	return "blog_submissions"
}
