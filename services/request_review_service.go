package services

import (
	"strings"
	"sufipulse-api/models"
	"time"

	"gorm.io/gorm"
)

// RequestReviewService applies admin decisions to studio and remote
// recording requests.
type RequestReviewService struct {
	db *gorm.DB
}

func NewRequestReviewService(db *gorm.DB) *RequestReviewService {
	return &RequestReviewService{db: db}
}

// ApplyStudioStatus moves a studio recording request through its machine and
// returns the refetched record.
func (s *RequestReviewService) ApplyStudioStatus(requestID int, status, comment string, actorID int) (*models.StudioRecordingRequest, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityStudioRequest, status); err != nil {
		return nil, err
	}

	var request models.StudioRecordingRequest
	if err := s.db.Where("id = ?", requestID).First(&request).Error; err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityStudioRequest, request.Status, status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	comment = strings.TrimSpace(comment)
	if comment != "" {
		updates["admin_comments"] = comment
	}

	if err := s.db.Model(&models.StudioRecordingRequest{}).
		Where("id = ?", requestID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	recordStatusHistory(s.db, EntityStudioRequest, requestID, request.Status, status, actorID, comment)

	var updated models.StudioRecordingRequest
	if err := s.db.Where("id = ?", requestID).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// ApplyRemoteStatus moves a remote recording request through its machine and
// returns the refetched record.
func (s *RequestReviewService) ApplyRemoteStatus(requestID int, status, comment string, actorID int) (*models.RemoteRecordingRequest, error) {
	status = NormalizeStatus(status)
	if err := ValidateStatusValue(EntityRemoteRequest, status); err != nil {
		return nil, err
	}

	var request models.RemoteRecordingRequest
	if err := s.db.Where("id = ?", requestID).First(&request).Error; err != nil {
		return nil, err
	}

	if err := ValidateTransition(EntityRemoteRequest, request.Status, status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	comment = strings.TrimSpace(comment)
	if comment != "" {
		updates["admin_comments"] = comment
	}

	if err := s.db.Model(&models.RemoteRecordingRequest{}).
		Where("id = ?", requestID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	recordStatusHistory(s.db, EntityRemoteRequest, requestID, request.Status, status, actorID, comment)

	var updated models.RemoteRecordingRequest
	if err := s.db.Where("id = ?", requestID).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
