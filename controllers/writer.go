package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"
	"sufipulse-api/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type KalamRequest struct {
	Title             string `json:"title" binding:"required"`
	Language          string `json:"language" binding:"required"`
	Theme             string `json:"theme"`
	KalamText         string `json:"kalam_text" binding:"required"`
	Description       string `json:"description"`
	SufiInfluence     string `json:"sufi_influence"`
	MusicalPreference string `json:"musical_preference"`
	WriterComments    string `json:"writer_comments"`
}

// SubmitKalam creates a kalam together with its review submission record.
func SubmitKalam(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req KalamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	kalam := models.Kalam{
		Title:             utils.SanitizeInput(req.Title),
		Language:          req.Language,
		Theme:             req.Theme,
		KalamText:         req.KalamText,
		Description:       req.Description,
		SufiInfluence:     req.SufiInfluence,
		MusicalPreference: req.MusicalPreference,
		WriterID:          auth.UserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := config.DB.Create(&kalam).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit kalam"})
		return
	}

	submission := models.KalamSubmission{
		KalamID:   kalam.ID,
		Status:    services.InitialStatus(services.EntityKalam),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.WriterComments != "" {
		submission.WriterComments = &req.WriterComments
	}
	if err := config.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Kalam submitted successfully",
		"kalam":      kalam,
		"submission": submission,
	})
}

// GetMyKalams lists the caller's kalams with their submission records.
func GetMyKalams(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var kalams []models.Kalam
	if err := config.DB.Where("writer_id = ?", auth.UserID).
		Order("created_at DESC").
		Find(&kalams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch kalams"})
		return
	}

	results := make([]services.KalamDetails, 0, len(kalams))
	for _, kalam := range kalams {
		var submission models.KalamSubmission
		config.DB.Where("kalam_id = ?", kalam.ID).First(&submission)
		results = append(results, services.KalamDetails{Kalam: kalam, Submission: submission})
	}

	c.JSON(http.StatusOK, gin.H{"kalams": results})
}

// GetKalamDetails returns one kalam plus its submission. Writers only see
// their own; admins see any.
func GetKalamDetails(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewKalamWorkflowService(config.DB)
	details, err := svc.GetDetails(kalamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !auth.IsAdmin() && details.Kalam.WriterID != auth.UserID && (details.Kalam.VocalistID == nil || *details.Kalam.VocalistID != auth.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this kalam"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// UpdateKalam lets the writer revise a kalam while changes are requested or
// before review starts, then moves the submission back to submitted.
func UpdateKalam(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req KalamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var kalam models.Kalam
	if err := config.DB.Where("id = ? AND writer_id = ?", kalamID, auth.UserID).First(&kalam).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kalam not found"})
		return
	}

	var submission models.KalamSubmission
	if err := config.DB.Where("kalam_id = ?", kalam.ID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission record not found"})
		return
	}

	if submission.Status != services.KalamSubmitted && submission.Status != services.KalamChangesRequested {
		c.JSON(http.StatusConflict, gin.H{"error": "Kalam can only be edited while submitted or when changes are requested"})
		return
	}

	if err := config.DB.Model(&models.Kalam{}).
		Where("id = ?", kalam.ID).
		Updates(map[string]interface{}{
			"title":              utils.SanitizeInput(req.Title),
			"language":           req.Language,
			"theme":              req.Theme,
			"kalam_text":         req.KalamText,
			"description":        req.Description,
			"sufi_influence":     req.SufiInfluence,
			"musical_preference": req.MusicalPreference,
			"updated_at":         time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update kalam"})
		return
	}

	svc := services.NewKalamWorkflowService(config.DB)

	if req.WriterComments != "" {
		config.DB.Model(&models.KalamSubmission{}).
			Where("id = ?", submission.ID).
			Updates(map[string]interface{}{
				"writer_comments": req.WriterComments,
				"updated_at":      time.Now(),
			})
	}

	// Revising a changes_requested kalam resubmits it for review.
	if submission.Status == services.KalamChangesRequested {
		details, err := svc.ApplyStatus(kalam.ID, submission.ID, services.KalamSubmitted, "", auth.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Kalam updated and resubmitted", "kalam": details.Kalam, "submission": details.Submission})
		return
	}

	details, err := svc.GetDetails(kalam.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kalam updated successfully", "kalam": details.Kalam, "submission": details.Submission})
}
