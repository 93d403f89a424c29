package controllers

import (
	"fmt"
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"

	"github.com/gin-gonic/gin"
)

// StatusUpdateRequest is the normalized body for every status mutation.
// The kalam endpoint historically used new_status/comments; those keys are
// still accepted as aliases.
type StatusUpdateRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`

	LegacyStatus  string `json:"new_status"`
	LegacyComment string `json:"comments"`
}

func (r *StatusUpdateRequest) normalize() {
	if r.Status == "" {
		r.Status = r.LegacyStatus
	}
	if r.Comment == "" {
		r.Comment = r.LegacyComment
	}
}

type kalamSubmissionRow struct {
	Kalam      models.Kalam           `json:"kalam"`
	Submission models.KalamSubmission `json:"submission"`
	WriterName string                 `json:"writer_name"`
}

// GetAllKalamSubmissions lists every kalam with its submission record and
// writer name for the admin review queue.
func GetAllKalamSubmissions(c *gin.Context) {
	var kalams []models.Kalam
	if err := config.DB.Order("created_at DESC").Find(&kalams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch kalams"})
		return
	}

	rows := make([]kalamSubmissionRow, 0, len(kalams))
	for _, kalam := range kalams {
		var submission models.KalamSubmission
		config.DB.Where("kalam_id = ?", kalam.ID).First(&submission)

		var writer models.User
		config.DB.Select("name").Where("id = ?", kalam.WriterID).First(&writer)

		rows = append(rows, kalamSubmissionRow{
			Kalam:      kalam,
			Submission: submission,
			WriterName: writer.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"submissions": rows})
}

// UpdateKalamSubmissionStatus moves a kalam submission through the review
// pipeline. Illegal transitions are rejected without touching the record.
func UpdateKalamSubmissionStatus(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissionID, ok := pathID(c, "sid")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.normalize()

	svc := services.NewKalamWorkflowService(config.DB)
	details, err := svc.ApplyStatus(kalamID, submissionID, req.Status, req.Comment, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	notifyKalamStatus(details)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Status updated successfully",
		"kalam":      details.Kalam,
		"submission": details.Submission,
	})
}

// AssignVocalist attaches a vocalist to a final_approved kalam.
func AssignVocalist(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		VocalistID int `json:"vocalist_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewKalamWorkflowService(config.DB)
	details, err := svc.AssignVocalist(kalamID, req.VocalistID, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.Notify(config.DB, req.VocalistID, "New Kalam Assigned",
		fmt.Sprintf("You have been assigned to perform \"%s\".", details.Kalam.Title), "info")
	services.Notify(config.DB, details.Kalam.WriterID, "Vocalist Assigned",
		fmt.Sprintf("A vocalist has been assigned to your kalam \"%s\".", details.Kalam.Title), "success")

	c.JSON(http.StatusOK, gin.H{
		"message":    "Vocalist assigned successfully",
		"kalam":      details.Kalam,
		"submission": details.Submission,
	})
}

// PostYouTubeLink publishes a complete_approved kalam.
func PostYouTubeLink(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	kalamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		YouTubeLink string `json:"youtube_link" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewKalamWorkflowService(config.DB)
	details, err := svc.PostYouTubeLink(kalamID, req.YouTubeLink, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.Notify(config.DB, details.Kalam.WriterID, "Kalam Published",
		fmt.Sprintf("Your kalam \"%s\" has been published on YouTube.", details.Kalam.Title), "success")
	if details.Kalam.VocalistID != nil {
		services.Notify(config.DB, *details.Kalam.VocalistID, "Kalam Published",
			fmt.Sprintf("\"%s\" has been published on YouTube.", details.Kalam.Title), "success")
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "YouTube link posted successfully",
		"kalam":      details.Kalam,
		"submission": details.Submission,
	})
}

// GetAllVocalists lists vocalist accounts for the assignment picker.
func GetAllVocalists(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role = ?", models.RoleVocalist).
		Order("name ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vocalists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocalists": users})
}

// GetAllWriters lists writer accounts.
func GetAllWriters(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role = ?", models.RoleWriter).
		Order("name ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch writers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"writers": users})
}

// GetUserByID returns a single user record for admin views.
func GetUserByID(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func notifyKalamStatus(details *services.KalamDetails) {
	var title, message, notifType string
	switch details.Submission.Status {
	case services.KalamChangesRequested:
		title, notifType = "Changes Requested", "warning"
		message = fmt.Sprintf("Changes have been requested for your kalam \"%s\".", details.Kalam.Title)
	case services.KalamAdminApproved:
		title, notifType = "Kalam Approved", "success"
		message = fmt.Sprintf("Your kalam \"%s\" has been approved by the admin.", details.Kalam.Title)
	case services.KalamAdminRejected:
		title, notifType = "Kalam Rejected", "error"
		message = fmt.Sprintf("Your kalam \"%s\" was not accepted.", details.Kalam.Title)
	case services.KalamFinalApproved:
		title, notifType = "Final Approval", "success"
		message = fmt.Sprintf("Your kalam \"%s\" has received final approval and awaits a vocalist.", details.Kalam.Title)
	case services.KalamCompleteApproved:
		title, notifType = "Recording Approved", "success"
		message = fmt.Sprintf("The recording of \"%s\" has been approved for publishing.", details.Kalam.Title)
	case services.KalamPosted:
		title, notifType = "Kalam Published", "success"
		message = fmt.Sprintf("Your kalam \"%s\" is now live.", details.Kalam.Title)
	default:
		return
	}

	services.Notify(config.DB, details.Kalam.WriterID, title, message, notifType)

	var writer models.User
	if err := config.DB.Select("email").Where("id = ?", details.Kalam.WriterID).First(&writer).Error; err == nil {
		comment := ""
		if details.Submission.AdminComments != nil {
			comment = *details.Submission.AdminComments
		}
		services.SendStatusEmail(writer.Email, message, comment)
	}
}
