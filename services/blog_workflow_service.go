package services

import (
	"strings"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// blogStatusMessages feeds owner notifications after a review decision.
var blogStatusMessages = map[string]string{
	BlogPending:  "Your blog is now pending review",
	BlogReview:   "Your blog is under review",
	BlogApproved: "Congratulations! Your blog has been approved",
	BlogRevision: "Your blog needs some revisions",
	BlogRejected: "Your blog has been rejected",
	BlogPosted:   "Your blog has been posted!",
}

// BlogStatusMessage returns the owner-facing text for a status.
func BlogStatusMessage(status string) string {
	if msg, ok := blogStatusMessages[status]; ok {
		return msg
	}
	return "Blog status updated"
}

type BlogWorkflowService struct {
	db *gorm.DB
}

func NewBlogWorkflowService(db *gorm.DB) *BlogWorkflowService {
	return &BlogWorkflowService{db: db}
}

// Get returns the authoritative blog submission snapshot.
func (s *BlogWorkflowService) Get(blogID int) (*models.BlogSubmission, error) {
	var blog models.BlogSubmission
	if err := s.db.Where("id = ?", blogID).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// ApplyStatus performs a guarded status change on a blog submission and
// returns the refetched record. Moving to posted stamps published_at.
func (s *BlogWorkflowService) ApplyStatus(blogID int, status, comment string, actorID int) (*models.BlogSubmission, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityBlog, status); err != nil {
		return nil, err
	}

	blog, err := s.Get(blogID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityBlog, blog.Status, status); err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}
	comment = strings.TrimSpace(comment)
	if comment != "" {
		updates["admin_comments"] = comment
	}
	if status == BlogPosted {
		updates["published_at"] = now
	}

	if err := s.db.Model(&models.BlogSubmission{}).
		Where("id = ?", blogID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	recordStatusHistory(s.db, EntityBlog, blogID, blog.Status, status, actorID, comment)

	return s.Get(blogID)
}
