package models

import "time"

// Kalam is a submitted lyric moving through the writer -> admin -> vocalist
// pipeline. Review state lives on the paired KalamSubmission record.
type Kalam struct {
	ID                int        `gorm:"primaryKey;column:id" json:"id"`
	Title             string     `gorm:"column:title" json:"title"`
	Language          string     `gorm:"column:language" json:"language"`
	Theme             string     `gorm:"column:theme" json:"theme"`
	KalamText         string     `gorm:"column:kalam_text" json:"kalam_text"`
	Description       string     `gorm:"column:description" json:"description"`
	SufiInfluence     string     `gorm:"column:sufi_influence" json:"sufi_influence"`
	MusicalPreference string     `gorm:"column:musical_preference" json:"musical_preference"`
	YouTubeLink       *string    `gorm:"column:youtube_link" json:"youtube_link"`
	WriterID          int        `gorm:"column:writer_id" json:"writer_id"`
	VocalistID        *int       `gorm:"column:vocalist_id" json:"vocalist_id"`
	PublishedAt       *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Kalam) TableName() string {
	return "kalams"
}

// KalamSubmission is the review-tracking record attached to a Kalam.
// Only admins write status and admin_comments; writers own writer_comments.
type KalamSubmission struct {
	ID                     int       `gorm:"primaryKey;column:id" json:"id"`
	KalamID                int       `gorm:"column:kalam_id" json:"kalam_id"`
	Status                 string    `gorm:"column:status" json:"status"`
	AdminComments          *string   `gorm:"column:admin_comments" json:"admin_comments"`
	WriterComments         *string   `gorm:"column:writer_comments" json:"writer_comments"`
	UserApprovalStatus     string    `gorm:"column:user_approval_status" json:"user_approval_status"`
	VocalistApprovalStatus string    `gorm:"column:vocalist_approval_status" json:"vocalist_approval_status"`
	CreatedAt              time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (KalamSubmission) TableName() string {
	return "kalam_submissions"
}
