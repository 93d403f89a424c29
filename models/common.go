package models

import "time"

// FileUpload represents the file_uploads table. The API only hands back a
// public URL; binary storage stays on disk under UPLOAD_PATH.
type FileUpload struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	StoredPath   string    `gorm:"column:stored_path" json:"stored_path"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	UploadedBy   int       `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (FileUpload) TableName() string {
	return "file_uploads"
}

// IsValidImageType reports whether the upload is an accepted image format.
func (f *FileUpload) IsValidImageType() bool {
	validTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
	for _, t := range validTypes {
		if f.MimeType == t {
			return true
		}
	}
	return false
}
