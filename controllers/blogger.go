package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"
	"time"

	"github.com/gin-gonic/gin"
)

type BloggerProfileRequest struct {
	AuthorName               string            `json:"author_name"`
	AuthorImageURL           *string           `json:"author_image_url"`
	ShortBio                 string            `json:"short_bio"`
	Location                 string            `json:"location"`
	WebsiteURL               *string           `json:"website_url"`
	SocialLinks              map[string]string `json:"social_links"`
	PublishPseudonym         bool              `json:"publish_pseudonym"`
	OriginalWorkConfirmation bool              `json:"original_work_confirmation"`
	PublishingRightsGranted  bool              `json:"publishing_rights_granted"`
	DiscoursePolicyAgreed    bool              `json:"discourse_policy_agreed"`
}

type BlogPostRequest struct {
	Title                string     `json:"title" binding:"required"`
	Excerpt              string     `json:"excerpt" binding:"required"`
	FeaturedImageURL     *string    `json:"featured_image_url"`
	Content              string     `json:"content" binding:"required"`
	Category             string     `json:"category" binding:"required"`
	Tags                 []string   `json:"tags"`
	Language             string     `json:"language" binding:"required"`
	EditorNotes          *string    `json:"editor_notes"`
	ScheduledPublishDate *time.Time `json:"scheduled_publish_date"`
	SEOMetaTitle         *string    `json:"seo_meta_title"`
	SEOMetaDescription   *string    `json:"seo_meta_description"`
}

// SubmitBloggerProfile creates or updates the caller's blogger profile.
// A fresh profile starts in the initial review status.
func SubmitBloggerProfile(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req BloggerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	socialLinks := "{}"
	if req.SocialLinks != nil {
		if raw, err := json.Marshal(req.SocialLinks); err == nil {
			socialLinks = string(raw)
		}
	}

	var existing models.BloggerProfile
	if err := config.DB.Where("user_id = ?", auth.UserID).First(&existing).Error; err == nil {
		if err := config.DB.Model(&models.BloggerProfile{}).
			Where("user_id = ?", auth.UserID).
			Updates(map[string]interface{}{
				"author_name":                req.AuthorName,
				"author_image_url":           req.AuthorImageURL,
				"short_bio":                  req.ShortBio,
				"location":                   req.Location,
				"website_url":                req.WebsiteURL,
				"social_links":               socialLinks,
				"publish_pseudonym":          req.PublishPseudonym,
				"original_work_confirmation": req.OriginalWorkConfirmation,
				"publishing_rights_granted":  req.PublishingRightsGranted,
				"discourse_policy_agreed":    req.DiscoursePolicyAgreed,
				"updated_at":                 time.Now(),
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	} else {
		now := time.Now()
		profile := models.BloggerProfile{
			UserID:                   auth.UserID,
			AuthorName:               req.AuthorName,
			AuthorImageURL:           req.AuthorImageURL,
			ShortBio:                 req.ShortBio,
			Location:                 req.Location,
			WebsiteURL:               req.WebsiteURL,
			SocialLinks:              socialLinks,
			PublishPseudonym:         req.PublishPseudonym,
			OriginalWorkConfirmation: req.OriginalWorkConfirmation,
			PublishingRightsGranted:  req.PublishingRightsGranted,
			DiscoursePolicyAgreed:    req.DiscoursePolicyAgreed,
			Status:                   services.InitialStatus(services.EntityBloggerProfile),
			CreatedAt:                now,
			UpdatedAt:                now,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}
	}

	svc := services.NewProfileReviewService(config.DB)
	profile, err := svc.GetBlogger(auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile submitted successfully", "profile": profile})
}

// GetBloggerProfile returns a blogger profile by user id. Owners and admins
// only.
func GetBloggerProfile(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	bloggerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !auth.IsAdmin() && bloggerID != auth.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this profile"})
		return
	}

	svc := services.NewProfileReviewService(config.DB)
	profile, err := svc.GetBlogger(bloggerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CheckBloggerRegistration reports whether the caller has submitted a profile.
func CheckBloggerRegistration(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var profile models.BloggerProfile
	err := config.DB.Where("user_id = ?", auth.UserID).First(&profile).Error
	c.JSON(http.StatusOK, gin.H{"is_registered": err == nil})
}

// SubmitBlogPost creates a blog submission in the initial review status.
// Only registered bloggers may submit.
func SubmitBlogPost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.BloggerProfile
	if err := config.DB.Where("user_id = ?", auth.UserID).First(&profile).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only registered bloggers can submit blog posts"})
		return
	}

	tags := "[]"
	if req.Tags != nil {
		if raw, err := json.Marshal(req.Tags); err == nil {
			tags = string(raw)
		}
	}

	now := time.Now()
	blog := models.BlogSubmission{
		UserID:               auth.UserID,
		Title:                req.Title,
		Excerpt:              req.Excerpt,
		FeaturedImageURL:     req.FeaturedImageURL,
		Content:              req.Content,
		Category:             req.Category,
		Tags:                 tags,
		Language:             req.Language,
		Status:               services.InitialStatus(services.EntityBlog),
		EditorNotes:          req.EditorNotes,
		ScheduledPublishDate: req.ScheduledPublishDate,
		SEOMetaTitle:         req.SEOMetaTitle,
		SEOMetaDescription:   req.SEOMetaDescription,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := config.DB.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit blog post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog post submitted successfully", "submission_id": blog.ID})
}

// GetMyBlogs lists the caller's blog submissions.
func GetMyBlogs(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var blogs []models.BlogSubmission
	if err := config.DB.Where("user_id = ?", auth.UserID).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": auth.UserID, "blogs": blogs})
}

// GetBlogSubmission returns one blog submission. Owners and admins only.
func GetBlogSubmission(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewBlogWorkflowService(config.DB)
	blog, err := svc.Get(blogID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !auth.IsAdmin() && blog.UserID != auth.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this blog submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// UpdateBlogPost lets the owner revise a blog submission.
func UpdateBlogPost(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var blog models.BlogSubmission
	if err := config.DB.Where("id = ? AND user_id = ?", blogID, auth.UserID).First(&blog).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this blog post"})
		return
	}

	tags := "[]"
	if req.Tags != nil {
		if raw, err := json.Marshal(req.Tags); err == nil {
			tags = string(raw)
		}
	}

	if err := config.DB.Model(&models.BlogSubmission{}).
		Where("id = ?", blog.ID).
		Updates(map[string]interface{}{
			"title":                  req.Title,
			"excerpt":                req.Excerpt,
			"featured_image_url":     req.FeaturedImageURL,
			"content":                req.Content,
			"category":               req.Category,
			"tags":                   tags,
			"language":               req.Language,
			"editor_notes":           req.EditorNotes,
			"scheduled_publish_date": req.ScheduledPublishDate,
			"seo_meta_title":         req.SEOMetaTitle,
			"seo_meta_description":   req.SEOMetaDescription,
			"updated_at":             time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	svc := services.NewBlogWorkflowService(config.DB)
	updated, err := svc.Get(blog.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated successfully", "blog_submission": updated})
}

// ApproveOrRejectBlog moves a blog submission through the review pipeline
// and notifies the owner.
func ApproveOrRejectBlog(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status        string `json:"status"`
		Comment       string `json:"comment"`
		AdminComments string `json:"admin_comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Comment == "" {
		req.Comment = req.AdminComments
	}

	svc := services.NewBlogWorkflowService(config.DB)
	blog, err := svc.ApplyStatus(blogID, req.Status, req.Comment, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := fmt.Sprintf("%s: %s", services.BlogStatusMessage(blog.Status), blog.Title)
	if blog.AdminComments != nil && *blog.AdminComments != "" {
		message = fmt.Sprintf("%s - Admin comment: %s", message, *blog.AdminComments)
	}
	services.Notify(config.DB, blog.UserID, "Blog Status Update", message, "info")

	c.JSON(http.StatusOK, gin.H{"message": "Blog status updated successfully", "blog": blog})
}

// GetAllBlogSubmissions lists every blog submission for the admin queue.
func GetAllBlogSubmissions(c *gin.Context) {
	var blogs []models.BlogSubmission
	if err := config.DB.Order("created_at DESC").Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}
