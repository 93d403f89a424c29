package models

import "time"

// BloggerProfile is a blogger's onboarding record awaiting admin review.
type BloggerProfile struct {
	ID                       int       `gorm:"primaryKey;column:id" json:"id"`
	UserID                   int       `gorm:"column:user_id" json:"user_id"`
	AuthorName               string    `gorm:"column:author_name" json:"author_name"`
	AuthorImageURL           *string   `gorm:"column:author_image_url" json:"author_image_url"`
	ShortBio                 string    `gorm:"column:short_bio" json:"short_bio"`
	Location                 string    `gorm:"column:location" json:"location"`
	WebsiteURL               *string   `gorm:"column:website_url" json:"website_url"`
	SocialLinks              string    `gorm:"column:social_links" json:"social_links"`
	PublishPseudonym         bool      `gorm:"column:publish_pseudonym" json:"publish_pseudonym"`
	OriginalWorkConfirmation bool      `gorm:"column:original_work_confirmation" json:"original_work_confirmation"`
	PublishingRightsGranted  bool      `gorm:"column:publishing_rights_granted" json:"publishing_rights_granted"`
	DiscoursePolicyAgreed    bool      `gorm:"column:discourse_policy_agreed" json:"discourse_policy_agreed"`
	Status                   string    `gorm:"column:status" json:"status"`
	CreatedAt                time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (BloggerProfile) TableName() string {
	return "bloggers"
}

// VocalistProfile is a vocalist's onboarding record awaiting admin review.
type VocalistProfile struct {
	ID                    int       `gorm:"primaryKey;column:id" json:"id"`
	UserID                int       `gorm:"column:user_id" json:"user_id"`
	VocalRange            string    `gorm:"column:vocal_range" json:"vocal_range"`
	Languages             string    `gorm:"column:languages" json:"languages"`
	SampleTitle           string    `gorm:"column:sample_title" json:"sample_title"`
	SampleURL             *string   `gorm:"column:sample_url" json:"sample_url"`
	Experience            string    `gorm:"column:experience" json:"experience"`
	Portfolio             *string   `gorm:"column:portfolio" json:"portfolio"`
	AudioSampleConsent    bool      `gorm:"column:audio_sample_consent" json:"audio_sample_consent"`
	RecordingDeclaration  bool      `gorm:"column:recording_declaration" json:"recording_declaration"`
	CollaborationConsent  bool      `gorm:"column:collaboration_consent" json:"collaboration_consent"`
	Status                string    `gorm:"column:status" json:"status"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (VocalistProfile) TableName() string {
	return "vocalists"
}
