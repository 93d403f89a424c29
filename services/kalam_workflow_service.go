package services

import (
	"errors"
	"strings"
	"sufipulse-api/models"
	"sufipulse-api/utils"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrVocalistAlreadyAssigned guards re-assignment server-side; the UI
	// hiding the control is not a safety boundary.
	ErrVocalistAlreadyAssigned = errors.New("kalam already has a vocalist assigned")
	// ErrNotAwaitingVocalist rejects assignment outside final_approved.
	ErrNotAwaitingVocalist = errors.New("kalam is not awaiting vocalist assignment")
	// ErrNotReadyToPost rejects YouTube posting outside complete_approved.
	ErrNotReadyToPost = errors.New("kalam is not ready to be posted")
)

// KalamDetails is the authoritative snapshot returned after every mutation.
type KalamDetails struct {
	Kalam      models.Kalam           `json:"kalam"`
	Submission models.KalamSubmission `json:"submission"`
}

type KalamWorkflowService struct {
	db *gorm.DB
}

func NewKalamWorkflowService(db *gorm.DB) *KalamWorkflowService {
	return &KalamWorkflowService{db: db}
}

// GetDetails loads the kalam together with its submission record.
func (s *KalamWorkflowService) GetDetails(kalamID int) (*KalamDetails, error) {
	var kalam models.Kalam
	if err := s.db.Where("id = ?", kalamID).First(&kalam).Error; err != nil {
		return nil, err
	}

	var submission models.KalamSubmission
	if err := s.db.Where("kalam_id = ?", kalamID).First(&submission).Error; err != nil {
		return nil, err
	}

	return &KalamDetails{Kalam: kalam, Submission: submission}, nil
}

// ApplyStatus performs a guarded status change on a kalam submission and
// returns the refetched snapshot. Validation happens before any database
// access; an illegal transition leaves the record untouched.
func (s *KalamWorkflowService) ApplyStatus(kalamID, submissionID int, status, comment string, actorID int) (*KalamDetails, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityKalam, status); err != nil {
		return nil, err
	}

	var submission models.KalamSubmission
	if err := s.db.Where("id = ? AND kalam_id = ?", submissionID, kalamID).First(&submission).Error; err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityKalam, submission.Status, status); err != nil {
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

	if err := s.db.Model(&models.KalamSubmission{}).
		Where("id = ?", submission.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	s.recordHistory(EntityKalam, submission.ID, submission.Status, status, actorID, comment)

	return s.GetDetails(kalamID)
}

// AssignVocalist attaches exactly one vocalist to a final_approved kalam.
// The vocalist must exist and hold the vocalist role.
func (s *KalamWorkflowService) AssignVocalist(kalamID, vocalistID, actorID int) (*KalamDetails, error) {
	if vocalistID <= 0 {
		return nil, &ValidationError{Field: "vocalist_id", Message: "no vocalist selected"}
	}

	details, err := s.GetDetails(kalamID)
	if err != nil {
		return nil, err
	}
	if details.Kalam.VocalistID != nil {
		return nil, ErrVocalistAlreadyAssigned
	}
	if details.Submission.Status != KalamFinalApproved {
		return nil, ErrNotAwaitingVocalist
	}

	var vocalist models.User
	if err := s.db.Where("id = ? AND role = ?", vocalistID, models.RoleVocalist).First(&vocalist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Field: "vocalist_id", Message: "vocalist not found"}
		}
		return nil, err
	}

	if err := s.db.Model(&models.Kalam{}).
		Where("id = ?", kalamID).
		Updates(map[string]interface{}{
			"vocalist_id": vocalistID,
			"updated_at":  time.Now(),
		}).Error; err != nil {
		return nil, err
	}

	return s.GetDetails(kalamID)
}

// PostYouTubeLink publishes a complete_approved kalam: the link and
// published_at land on the kalam and the submission moves to posted.
func (s *KalamWorkflowService) PostYouTubeLink(kalamID int, link string, actorID int) (*KalamDetails, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, &ValidationError{Field: "youtube_link", Message: "youtube link is required"}
	}
	if !utils.ValidateYouTubeLink(link) {
		return nil, &ValidationError{Field: "youtube_link", Message: "must be a youtube.com or youtu.be URL"}
	}

	details, err := s.GetDetails(kalamID)
	if err != nil {
		return nil, err
	}
	if details.Submission.Status != KalamCompleteApproved {
		return nil, ErrNotReadyToPost
	}

	now := time.Now()
	if err := s.db.Model(&models.Kalam{}).
		Where("id = ?", kalamID).
		Updates(map[string]interface{}{
			"youtube_link": link,
			"published_at": now,
			"updated_at":   now,
		}).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.KalamSubmission{}).
		Where("id = ?", details.Submission.ID).
		Updates(map[string]interface{}{
			"status":     KalamPosted,
			"updated_at": now,
		}).Error; err != nil {
		return nil, err
	}

	s.recordHistory(EntityKalam, details.Submission.ID, details.Submission.Status, KalamPosted, actorID, "")

	return s.GetDetails(kalamID)
}

// recordHistory appends to the transition audit trail. Failures are swallowed:
// history must never fail the mutation that already happened.
func (s *KalamWorkflowService) recordHistory(kind EntityKind, entityID int, oldStatus, newStatus string, actorID int, comment string) {
	recordStatusHistory(s.db, kind, entityID, oldStatus, newStatus, actorID, comment)
}
