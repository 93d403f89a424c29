package models

import "time"

// StudioRecordingRequest is a vocalist's request for an in-person session
// against an approved lyric.
type StudioRecordingRequest struct {
	ID                      int       `gorm:"primaryKey;column:id" json:"id"`
	VocalistID              int       `gorm:"column:vocalist_id" json:"vocalist_id"`
	KalamID                 int       `gorm:"column:kalam_id" json:"kalam_id"`
	PreferredSessionDate    string    `gorm:"column:preferred_session_date" json:"preferred_session_date"`
	PreferredTimeBlock      string    `gorm:"column:preferred_time_block" json:"preferred_time_block"`
	EstimatedStudioDuration string    `gorm:"column:estimated_studio_duration" json:"estimated_studio_duration"`
	PerformanceDirection    string    `gorm:"column:performance_direction" json:"performance_direction"`
	ReferenceUploadURL      *string   `gorm:"column:reference_upload_url" json:"reference_upload_url"`
	AvailabilityConfirmed   bool      `gorm:"column:availability_confirmed" json:"availability_confirmed"`
	StudioPoliciesAgreed    bool      `gorm:"column:studio_policies_agreed" json:"studio_policies_agreed"`
	Status                  string    `gorm:"column:status" json:"status"`
	AdminComments           *string   `gorm:"column:admin_comments" json:"admin_comments"`
	CreatedAt               time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (StudioRecordingRequest) TableName() string {
	return "studio_recording_requests"
}

// RemoteRecordingRequest is a vocalist's request to record remotely.
type RemoteRecordingRequest struct {
	ID                              int       `gorm:"primaryKey;column:id" json:"id"`
	VocalistID                      int       `gorm:"column:vocalist_id" json:"vocalist_id"`
	KalamID                         int       `gorm:"column:kalam_id" json:"kalam_id"`
	RecordingEnvironment            string    `gorm:"column:recording_environment" json:"recording_environment"`
	TargetSubmissionDate            string    `gorm:"column:target_submission_date" json:"target_submission_date"`
	InterpretationNotes             string    `gorm:"column:interpretation_notes" json:"interpretation_notes"`
	SampleUploadURL                 *string   `gorm:"column:sample_upload_url" json:"sample_upload_url"`
	OriginalRecordingConfirmed      bool      `gorm:"column:original_recording_confirmed" json:"original_recording_confirmed"`
	RemoteProductionStandardsAgreed bool      `gorm:"column:remote_production_standards_agreed" json:"remote_production_standards_agreed"`
	Status                          string    `gorm:"column:status" json:"status"`
	AdminComments                   *string   `gorm:"column:admin_comments" json:"admin_comments"`
	CreatedAt                       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (RemoteRecordingRequest) TableName() string {
	return "remote_recording_requests"
}
