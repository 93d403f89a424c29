package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage stores an image under UPLOAD_PATH with a generated filename
// and returns the public URL.
func UploadImage(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	upload := models.FileUpload{
		OriginalName: file.Filename,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		UploadedBy:   auth.UserID,
		CreatedAt:    time.Now(),
	}
	if !upload.IsValidImageType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedName := uuid.New().String() + ext
	fullPath := filepath.Join(uploadPath, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	upload.StoredPath = fullPath
	if err := config.DB.Create(&upload).Error; err != nil {
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"url":     "/uploads/" + storedName,
		"upload":  upload,
	})
}
