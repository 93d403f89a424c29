package controllers

import (
	"net/http"
	"os"
	"sufipulse-api/config"
	"sufipulse-api/models"
	"sufipulse-api/services"
	"time"

	"github.com/gin-gonic/gin"
)

type postedKalamRow struct {
	Kalam        models.Kalam `json:"kalam"`
	WriterName   string       `json:"writer_name"`
	VocalistName string       `json:"vocalist_name"`
}

// GetPostedKalams lists published kalams for the public gallery.
func GetPostedKalams(c *gin.Context) {
	skip, limit := pagination(c, 4)

	var kalams []models.Kalam
	if err := config.DB.Where("youtube_link IS NOT NULL AND published_at IS NOT NULL").
		Order("published_at DESC").
		Offset(skip).Limit(limit).
		Find(&kalams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posted kalams"})
		return
	}

	rows := make([]postedKalamRow, 0, len(kalams))
	for _, kalam := range kalams {
		row := postedKalamRow{Kalam: kalam}

		var writer models.User
		if err := config.DB.Select("name").Where("id = ?", kalam.WriterID).First(&writer).Error; err == nil {
			row.WriterName = writer.Name
		}
		if kalam.VocalistID != nil {
			var vocalist models.User
			if err := config.DB.Select("name").Where("id = ?", *kalam.VocalistID).First(&vocalist).Error; err == nil {
				row.VocalistName = vocalist.Name
			}
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"kalams": rows})
}

// GetPublicVocalists lists approved vocalist profiles for the directory.
func GetPublicVocalists(c *gin.Context) {
	skip, limit := pagination(c, 10)

	var profiles []models.VocalistProfile
	if err := config.DB.Where("status = ?", services.ProfileApproved).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vocalists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocalists": profiles})
}

// GetPublicWriters lists writer accounts with published work.
func GetPublicWriters(c *gin.Context) {
	skip, limit := pagination(c, 10)

	var users []models.User
	if err := config.DB.
		Where("role = ? AND id IN (?)", models.RoleWriter,
			config.DB.Model(&models.Kalam{}).Select("writer_id").Where("published_at IS NOT NULL")).
		Order("name ASC").
		Offset(skip).Limit(limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch writers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"writers": users})
}

// GetApprovedBlogs lists publicly visible blogs with optional category and
// search filtering.
func GetApprovedBlogs(c *gin.Context) {
	skip, limit := pagination(c, 6)

	query := config.DB.Where("status IN ?", []string{services.BlogApproved, services.BlogPosted})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", pattern, pattern, pattern)
	}

	var blogs []models.BlogSubmission
	if err := query.Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// GetPublicBlog returns one publicly visible blog with its engagement stats.
func GetPublicBlog(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var blog models.BlogSubmission
	if err := config.DB.
		Where("id = ? AND status IN ?", blogID, []string{services.BlogApproved, services.BlogPosted}).
		First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	svc := services.NewEngagementService(config.DB)
	stats, err := svc.Stats(blog.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog, "engagement": stats})
}

// CreatePartnershipProposal stores a public collaboration proposal.
func CreatePartnershipProposal(c *gin.Context) {
	var req struct {
		FullName         string  `json:"full_name" binding:"required"`
		Email            string  `json:"email" binding:"required,email"`
		OrganizationName string  `json:"organization_name" binding:"required"`
		RoleTitle        string  `json:"role_title" binding:"required"`
		OrganizationType *string `json:"organization_type"`
		PartnershipType  *string `json:"partnership_type"`
		Website          *string `json:"website"`
		ProposalText     string  `json:"proposal_text" binding:"required"`
		ProposedTimeline *string `json:"proposed_timeline"`
		Resources        *string `json:"resources"`
		Goals            *string `json:"goals"`
		SacredAlignment  *bool   `json:"sacred_alignment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal := models.PartnershipProposal{
		FullName:         req.FullName,
		Email:            req.Email,
		OrganizationName: req.OrganizationName,
		RoleTitle:        req.RoleTitle,
		OrganizationType: req.OrganizationType,
		PartnershipType:  req.PartnershipType,
		Website:          req.Website,
		ProposalText:     req.ProposalText,
		ProposedTimeline: req.ProposedTimeline,
		Resources:        req.Resources,
		Goals:            req.Goals,
		SacredAlignment:  req.SacredAlignment == nil || *req.SacredAlignment,
		CreatedAt:        time.Now(),
	}
	if err := config.DB.Create(&proposal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit proposal"})
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// GetPartnershipProposals lists proposals for admins.
func GetPartnershipProposals(c *gin.Context) {
	var proposals []models.PartnershipProposal
	if err := config.DB.Order("created_at DESC").Find(&proposals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch proposals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

// SubmitContactForm sends a confirmation email to the sender and a copy to
// the contact inbox. Email failures never fail the request.
func SubmitContactForm(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminInbox := os.Getenv("CONTACT_INBOX")
	if adminInbox == "" {
		adminInbox = "contact@sufipulse.com"
	}
	services.SendContactEmails(req.Name, req.Email, req.Subject, req.Message, adminInbox)

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully! We will get back to you soon.",
		"status":  "success",
	})
}
