package models

import "time"

// PartnershipProposal is a public collaboration proposal; it has no review
// workflow, admins read it out of band.
type PartnershipProposal struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	FullName         string    `gorm:"column:full_name" json:"full_name"`
	Email            string    `gorm:"column:email" json:"email"`
	OrganizationName string    `gorm:"column:organization_name" json:"organization_name"`
	RoleTitle        string    `gorm:"column:role_title" json:"role_title"`
	OrganizationType *string   `gorm:"column:organization_type" json:"organization_type"`
	PartnershipType  *string   `gorm:"column:partnership_type" json:"partnership_type"`
	Website          *string   `gorm:"column:website" json:"website"`
	ProposalText     string    `gorm:"column:proposal_text" json:"proposal_text"`
	ProposedTimeline *string   `gorm:"column:proposed_timeline" json:"proposed_timeline"`
	Resources        *string   `gorm:"column:resources" json:"resources"`
	Goals            *string   `gorm:"column:goals" json:"goals"`
	SacredAlignment  bool      `gorm:"column:sacred_alignment" json:"sacred_alignment"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PartnershipProposal) TableName() string {
	return "partnership_proposals"
}
