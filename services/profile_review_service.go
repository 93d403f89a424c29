package services

import (
	"fmt"
	"strings"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// ProfileReviewService applies admin review decisions to blogger and
// vocalist onboarding profiles. Both kinds share one status machine.
type ProfileReviewService struct {
	db *gorm.DB
}

func NewProfileReviewService(db *gorm.DB) *ProfileReviewService {
	return &ProfileReviewService{db: db}
}

// GetBlogger returns the blogger profile owned by userID.
func (s *ProfileReviewService) GetBlogger(userID int) (*models.BloggerProfile, error) {
	var profile models.BloggerProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetVocalist returns the vocalist profile owned by userID.
func (s *ProfileReviewService) GetVocalist(userID int) (*models.VocalistProfile, error) {
	var profile models.VocalistProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ApplyBloggerStatus moves a blogger profile through the review machine and
// returns the refetched profile.
func (s *ProfileReviewService) ApplyBloggerStatus(userID int, status string, actorID int) (*models.BloggerProfile, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityBloggerProfile, status); err != nil {
		return nil, err
	}

	profile, err := s.GetBlogger(userID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityBloggerProfile, profile.Status, status); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.BloggerProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error; err != nil {
		return nil, err
	}

	recordStatusHistory(s.db, EntityBloggerProfile, profile.ID, profile.Status, status, actorID, "")

	return s.GetBlogger(userID)
}

// ApplyVocalistStatus moves a vocalist profile through the review machine and
// returns the refetched profile.
func (s *ProfileReviewService) ApplyVocalistStatus(userID int, status string, actorID int) (*models.VocalistProfile, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityVocalistProfile, status); err != nil {
		return nil, err
	}

	profile, err := s.GetVocalist(userID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityVocalistProfile, profile.Status, status); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.VocalistProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error; err != nil {
		return nil, err
	}

	recordStatusHistory(s.db, EntityVocalistProfile, profile.ID, profile.Status, status, actorID, "")

	return s.GetVocalist(userID)
}

// ProfileStatusMessage returns the owner-facing text for a profile decision.
func ProfileStatusMessage(role, status string) string {
	switch status {
	case ProfileApproved:
		return fmt.Sprintf("Congratulations! Your %s profile has been approved", role)
	case ProfileRejected:
		return fmt.Sprintf("Your %s profile has been rejected", role)
	case ProfileNeedsRevision:
		return fmt.Sprintf("Your %s profile needs some revisions", role)
	case ProfileUnderReview:
		return fmt.Sprintf("Your %s profile is under review", role)
	default:
		return fmt.Sprintf("Your %s profile status is now %s", role, strings.ReplaceAll(status, "_", " "))
	}
}
