package services

import (
	"errors"
	"strings"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// CommentThread is a top-level comment with its ordered replies.
type CommentThread struct {
	models.BlogComment
	Replies []models.BlogComment `json:"replies"`
}

// CommentPage is one offset-paginated slice of a blog's comment list.
type CommentPage struct {
	Comments      []CommentThread `json:"comments"`
	TotalComments int64           `json:"total_comments"`
	HasMore       bool            `json:"has_more"`
}

// EngagementService owns comments, likes, views and shares for published
// blog posts.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ListComments returns top-level comments newest first, each with replies
// oldest first. total_comments counts every comment on the blog; has_more is
// derived from the top-level total so pages concatenate without overlap.
func (s *EngagementService) ListComments(blogID, skip, limit int) (*CommentPage, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 5
	}

	var total int64
	if err := s.db.Model(&models.BlogComment{}).
		Where("blog_id = ?", blogID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var topLevel int64
	if err := s.db.Model(&models.BlogComment{}).
		Where("blog_id = ? AND parent_id IS NULL", blogID).
		Count(&topLevel).Error; err != nil {
		return nil, err
	}

	var parents []models.BlogComment
	if err := s.db.Where("blog_id = ? AND parent_id IS NULL", blogID).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&parents).Error; err != nil {
		return nil, err
	}

	page := &CommentPage{
		Comments:      make([]CommentThread, 0, len(parents)),
		TotalComments: total,
		HasMore:       int64(skip+limit) < topLevel,
	}

	if len(parents) == 0 {
		return page, nil
	}

	parentIDs := make([]int, 0, len(parents))
	for _, parent := range parents {
		parentIDs = append(parentIDs, parent.ID)
	}

	var replies []models.BlogComment
	if err := s.db.Where("parent_id IN ?", parentIDs).
		Order("created_at ASC, id ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	byParent := make(map[int][]models.BlogComment, len(parents))
	for _, reply := range replies {
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	for _, parent := range parents {
		thread := CommentThread{BlogComment: parent}
		thread.Replies = byParent[parent.ID]
		if thread.Replies == nil {
			thread.Replies = []models.BlogComment{}
		}
		page.Comments = append(page.Comments, thread)
	}

	return page, nil
}

// AddComment creates a comment or a one-level reply. Replies to replies are
// rejected: the parent must itself be top-level and on the same blog.
func (s *EngagementService) AddComment(blogID, userID int, commenterName, text string, parentID *int) (*models.BlogComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "comment_text", Message: "comment text is required"}
	}

	if parentID != nil {
		var parent models.BlogComment
		if err := s.db.Where("id = ? AND blog_id = ?", *parentID, blogID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ValidationError{Field: "parent_id", Message: "parent comment not found"}
			}
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, &ValidationError{Field: "parent_id", Message: "replies can only target top-level comments"}
		}
	}

	comment := models.BlogComment{
		BlogID:        blogID,
		UserID:        userID,
		ParentID:      parentID,
		CommentText:   text,
		CommenterName: commenterName,
		CreatedAt:     time.Now(),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// ToggleLike flips the caller's like and returns the server-count. Calling
// it twice in sequence restores the original state and count.
func (s *EngagementService) ToggleLike(blogID, userID int) (liked bool, count int64, err error) {
	var existing models.BlogLike
	findErr := s.db.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&existing).Error

	switch {
	case findErr == nil:
		if err = s.db.Delete(&models.BlogLike{}, existing.ID).Error; err != nil {
			return false, 0, err
		}
		liked = false
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		like := models.BlogLike{BlogID: blogID, UserID: userID, CreatedAt: time.Now()}
		if err = s.db.Create(&like).Error; err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, findErr
	}

	if err = s.db.Model(&models.BlogLike{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error; err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// HasLiked reports whether the user currently likes the blog.
func (s *EngagementService) HasLiked(blogID, userID int) (bool, int64, error) {
	var existing models.BlogLike
	err := s.db.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&existing).Error
	liked := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, err
	}

	var count int64
	if err := s.db.Model(&models.BlogLike{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error; err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// RecordView stores one view per user per blog. Repeat views are ignored.
func (s *EngagementService) RecordView(blogID, userID int) (counted bool, err error) {
	var existing models.BlogView
	findErr := s.db.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&existing).Error
	if findErr == nil {
		return false, nil
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, findErr
	}

	view := models.BlogView{BlogID: blogID, UserID: userID, CreatedAt: time.Now()}
	if err := s.db.Create(&view).Error; err != nil {
		return false, err
	}
	return true, nil
}

// RecordShare stores a share event for the given platform.
func (s *EngagementService) RecordShare(blogID, userID int, platform string) error {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return &ValidationError{Field: "platform", Message: "platform is required"}
	}

	share := models.BlogShare{
		BlogID:    blogID,
		UserID:    userID,
		Platform:  platform,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&share).Error
}

// EngagementStats aggregates a blog's counters from their source tables.
type EngagementStats struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// Stats computes all engagement counters for a blog.
func (s *EngagementService) Stats(blogID int) (*EngagementStats, error) {
	stats := &EngagementStats{}

	if err := s.db.Model(&models.BlogView{}).Where("blog_id = ?", blogID).Count(&stats.Views).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.BlogLike{}).Where("blog_id = ?", blogID).Count(&stats.Likes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.BlogComment{}).Where("blog_id = ?", blogID).Count(&stats.Comments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.BlogShare{}).Where("blog_id = ?", blogID).Count(&stats.Shares).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
