package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"

	"github.com/gin-gonic/gin"
)

// GetBlogComments returns one page of a blog's comment thread.
func GetBlogComments(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skip, limit := pagination(c, 10)

	svc := services.NewEngagementService(config.DB)
	page, err := svc.ListComments(blogID, skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// AddBlogComment posts a comment or a reply to a top-level comment.
func AddBlogComment(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		CommentText string `json:"comment_text" binding:"required"`
		ParentID    *int   `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Select("name").Where("id = ?", auth.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	svc := services.NewEngagementService(config.DB)
	comment, err := svc.AddComment(blogID, auth.UserID, user.Name, req.CommentText, req.ParentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "comment": comment})
}

// ToggleBlogLike likes or unlikes a blog and returns the resulting count.
func ToggleBlogLike(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewEngagementService(config.DB)
	liked, count, err := svc.ToggleLike(blogID, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}

// GetBlogLikeStatus reports whether the caller has liked the blog.
func GetBlogLikeStatus(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewEngagementService(config.DB)
	liked, count, err := svc.HasLiked(blogID, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}

// RecordBlogView counts at most one view per user per blog.
func RecordBlogView(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewEngagementService(config.DB)
	counted, err := svc.RecordView(blogID, auth.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counted": counted})
}

// RecordBlogShare logs a share with the platform it happened on.
func RecordBlogShare(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Platform string `json:"platform" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewEngagementService(config.DB)
	if err := svc.RecordShare(blogID, auth.UserID, req.Platform); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Share recorded"})
}

// GetBlogEngagement returns the aggregate engagement counts for a blog.
func GetBlogEngagement(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.NewEngagementService(config.DB)
	stats, err := svc.Stats(blogID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
