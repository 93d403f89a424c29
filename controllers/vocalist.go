package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"
	"time"

	"github.com/gin-gonic/gin"
)

type VocalistProfileRequest struct {
	VocalRange           string  `json:"vocal_range"`
	Languages            string  `json:"languages"`
	SampleTitle          string  `json:"sample_title"`
	SampleURL            *string `json:"sample_url"`
	Experience           string  `json:"experience"`
	Portfolio            *string `json:"portfolio"`
	AudioSampleConsent   bool    `json:"audio_sample_consent"`
	RecordingDeclaration bool    `json:"recording_declaration"`
	CollaborationConsent bool    `json:"collaboration_consent"`
}

// SubmitVocalistProfile creates or updates the caller's vocalist profile.
func SubmitVocalistProfile(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req VocalistProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.VocalistProfile
	if err := config.DB.Where("user_id = ?", auth.UserID).First(&existing).Error; err == nil {
		if err := config.DB.Model(&models.VocalistProfile{}).
			Where("user_id = ?", auth.UserID).
			Updates(map[string]interface{}{
				"vocal_range":           req.VocalRange,
				"languages":             req.Languages,
				"sample_title":          req.SampleTitle,
				"sample_url":            req.SampleURL,
				"experience":            req.Experience,
				"portfolio":             req.Portfolio,
				"audio_sample_consent":  req.AudioSampleConsent,
				"recording_declaration": req.RecordingDeclaration,
				"collaboration_consent": req.CollaborationConsent,
				"updated_at":            time.Now(),
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	} else {
		now := time.Now()
		profile := models.VocalistProfile{
			UserID:               auth.UserID,
			VocalRange:           req.VocalRange,
			Languages:            req.Languages,
			SampleTitle:          req.SampleTitle,
			SampleURL:            req.SampleURL,
			Experience:           req.Experience,
			Portfolio:            req.Portfolio,
			AudioSampleConsent:   req.AudioSampleConsent,
			RecordingDeclaration: req.RecordingDeclaration,
			CollaborationConsent: req.CollaborationConsent,
			Status:               services.InitialStatus(services.EntityVocalistProfile),
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}
	}

	svc := services.NewProfileReviewService(config.DB)
	profile, err := svc.GetVocalist(auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile submitted successfully", "profile": profile})
}

// GetVocalistProfile returns a vocalist profile by user id. Owners and
// admins only.
func GetVocalistProfile(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	vocalistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !auth.IsAdmin() && vocalistID != auth.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this profile"})
		return
	}

	svc := services.NewProfileReviewService(config.DB)
	profile, err := svc.GetVocalist(vocalistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CheckVocalistRegistration reports whether the caller has submitted a profile.
func CheckVocalistRegistration(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var profile models.VocalistProfile
	err := config.DB.Where("user_id = ?", auth.UserID).First(&profile).Error
	c.JSON(http.StatusOK, gin.H{"is_registered": err == nil})
}

// GetMyAssignedKalams lists the kalams assigned to the calling vocalist.
func GetMyAssignedKalams(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var kalams []models.Kalam
	if err := config.DB.Where("vocalist_id = ?", auth.UserID).
		Order("updated_at DESC").
		Find(&kalams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assigned kalams"})
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
