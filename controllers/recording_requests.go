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

type StudioRequestCreate struct {
	KalamID                 int     `json:"kalam_id" binding:"required"`
	PreferredSessionDate    string  `json:"preferred_session_date"`
	PreferredTimeBlock      string  `json:"preferred_time_block"`
	EstimatedStudioDuration string  `json:"estimated_studio_duration"`
	PerformanceDirection    string  `json:"performance_direction"`
	ReferenceUploadURL      *string `json:"reference_upload_url"`
	AvailabilityConfirmed   bool    `json:"availability_confirmed"`
	StudioPoliciesAgreed    bool    `json:"studio_policies_agreed"`
}

type RemoteRequestCreate struct {
	KalamID                         int     `json:"kalam_id" binding:"required"`
	RecordingEnvironment            string  `json:"recording_environment"`
	TargetSubmissionDate            string  `json:"target_submission_date"`
	InterpretationNotes             string  `json:"interpretation_notes"`
	SampleUploadURL                 *string `json:"sample_upload_url"`
	OriginalRecordingConfirmed      bool    `json:"original_recording_confirmed"`
	RemoteProductionStandardsAgreed bool    `json:"remote_production_standards_agreed"`
}

// GetApprovedLyrics lists final_approved kalams still waiting for a
// vocalist, the pool recording requests are made against.
func GetApprovedLyrics(c *gin.Context) {
	var kalams []models.Kalam
	if err := config.DB.
		Where("vocalist_id IS NULL AND id IN (?)",
			config.DB.Model(&models.KalamSubmission{}).Select("kalam_id").Where("status = ?", services.KalamFinalApproved)).
		Order("updated_at DESC").
		Find(&kalams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch approved lyrics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kalams": kalams})
}

// CreateStudioRequest files an in-person recording request for the calling
// vocalist.
func CreateStudioRequest(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req StudioRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !requestableKalam(c, req.KalamID) {
		return
	}

	now := time.Now()
	request := models.StudioRecordingRequest{
		VocalistID:              auth.UserID,
		KalamID:                 req.KalamID,
		PreferredSessionDate:    req.PreferredSessionDate,
		PreferredTimeBlock:      req.PreferredTimeBlock,
		EstimatedStudioDuration: req.EstimatedStudioDuration,
		PerformanceDirection:    req.PerformanceDirection,
		ReferenceUploadURL:      req.ReferenceUploadURL,
		AvailabilityConfirmed:   req.AvailabilityConfirmed,
		StudioPoliciesAgreed:    req.StudioPoliciesAgreed,
		Status:                  services.InitialStatus(services.EntityStudioRequest),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create studio recording request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Studio recording request submitted", "request": request})
}

// CreateRemoteRequest files a remote recording request for the calling
// vocalist.
func CreateRemoteRequest(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req RemoteRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !requestableKalam(c, req.KalamID) {
		return
	}

	now := time.Now()
	request := models.RemoteRecordingRequest{
		VocalistID:                      auth.UserID,
		KalamID:                         req.KalamID,
		RecordingEnvironment:            req.RecordingEnvironment,
		TargetSubmissionDate:            req.TargetSubmissionDate,
		InterpretationNotes:             req.InterpretationNotes,
		SampleUploadURL:                 req.SampleUploadURL,
		OriginalRecordingConfirmed:      req.OriginalRecordingConfirmed,
		RemoteProductionStandardsAgreed: req.RemoteProductionStandardsAgreed,
		Status:                          services.InitialStatus(services.EntityRemoteRequest),
		CreatedAt:                       now,
		UpdatedAt:                       now,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create remote recording request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Remote recording request submitted", "request": request})
}

// GetMyStudioRequests lists the calling vocalist's studio requests.
func GetMyStudioRequests(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var requests []models.StudioRecordingRequest
	if err := config.DB.Where("vocalist_id = ?", auth.UserID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch studio recording requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetMyRemoteRequests lists the calling vocalist's remote requests.
func GetMyRemoteRequests(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var requests []models.RemoteRecordingRequest
	if err := config.DB.Where("vocalist_id = ?", auth.UserID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch remote recording requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetAllStudioRequests lists every studio request for the admin queue.
func GetAllStudioRequests(c *gin.Context) {
	var requests []models.StudioRecordingRequest
	if err := config.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch studio recording requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetAllRemoteRequests lists every remote request for the admin queue.
func GetAllRemoteRequests(c *gin.Context) {
	var requests []models.RemoteRecordingRequest
	if err := config.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch remote recording requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// CheckRequestExists reports whether the calling vocalist already filed any
// request against a kalam.
func CheckRequestExists(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "kalam_id")
	if !ok {
		return
	}

	var studioCount, remoteCount int64
	config.DB.Model(&models.StudioRecordingRequest{}).
		Where("vocalist_id = ? AND kalam_id = ?", auth.UserID, kalamID).
		Count(&studioCount)
	config.DB.Model(&models.RemoteRecordingRequest{}).
		Where("vocalist_id = ? AND kalam_id = ?", auth.UserID, kalamID).
		Count(&remoteCount)

	c.JSON(http.StatusOK, gin.H{"exists": studioCount+remoteCount > 0})
}

// UpdateStudioRequestStatus reviews a studio request and notifies the
// vocalist.
func UpdateStudioRequestStatus(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.normalize()

	svc := services.NewRequestReviewService(config.DB)
	request, err := svc.ApplyStudioStatus(requestID, req.Status, req.Comment, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.Notify(config.DB, request.VocalistID, "Studio Request Update",
		"Your studio recording request status is now "+request.Status+".", "info")

	c.JSON(http.StatusOK, gin.H{"message": "Request status updated", "request": request})
}

// UpdateRemoteRequestStatus reviews a remote request and notifies the
// vocalist.
func UpdateRemoteRequestStatus(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.normalize()

	svc := services.NewRequestReviewService(config.DB)
	request, err := svc.ApplyRemoteStatus(requestID, req.Status, req.Comment, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.Notify(config.DB, request.VocalistID, "Remote Request Update",
		"Your remote recording request status is now "+request.Status+".", "info")

	c.JSON(http.StatusOK, gin.H{"message": "Request status updated", "request": request})
}

// requestableKalam verifies the kalam exists and is still awaiting a
// vocalist before a recording request is filed against it.
func requestableKalam(c *gin.Context, kalamID int) bool {
	var kalam models.Kalam
	if err := config.DB.Where("id = ?", kalamID).First(&kalam).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kalam not found"})
		return false
	}

	var submission models.KalamSubmission
	if err := config.DB.Where("kalam_id = ?", kalamID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission record not found"})
		return false
	}

	if submission.Status != services.KalamFinalApproved {
		c.JSON(http.StatusConflict, gin.H{"error": "Kalam is not approved for recording requests"})
		return false
	}
	return true
}
