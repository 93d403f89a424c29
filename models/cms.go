package models

import "time"

// CMSPage is an editable content page resolved by slug on the public site.
type CMSPage struct {
	ID              int       `gorm:"primaryKey;column:id" json:"id"`
	PageName        string    `gorm:"column:page_name" json:"page_name"`
	PageTitle       string    `gorm:"column:page_title" json:"page_title"`
	PageSlug        string    `gorm:"column:page_slug;unique" json:"page_slug"`
	MetaDescription *string   `gorm:"column:meta_description" json:"meta_description"`
	MetaKeywords    *string   `gorm:"column:meta_keywords" json:"meta_keywords"`
	HeroTitle       *string   `gorm:"column:hero_title" json:"hero_title"`
	HeroSubtitle    *string   `gorm:"column:hero_subtitle" json:"hero_subtitle"`
	HeroQuote       *string   `gorm:"column:hero_quote" json:"hero_quote"`
	HeroQuoteAuthor *string   `gorm:"column:hero_quote_author" json:"hero_quote_author"`
	IsActive        bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSPage) TableName() string {
	return "cms_pages"
}

type CMSStat struct {
	ID              int       `gorm:"primaryKey;column:id" json:"id"`
	PageID          int       `gorm:"column:page_id" json:"page_id"`
	StatNumber      string    `gorm:"column:stat_number" json:"stat_number"`
	StatLabel       string    `gorm:"column:stat_label" json:"stat_label"`
	StatDescription *string   `gorm:"column:stat_description" json:"stat_description"`
	StatIcon        *string   `gorm:"column:stat_icon" json:"stat_icon"`
	StatOrder       int       `gorm:"column:stat_order" json:"stat_order"`
	IsActive        bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSStat) TableName() string {
	return "cms_stats"
}

type CMSValue struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	PageID           int       `gorm:"column:page_id" json:"page_id"`
	ValueTitle       string    `gorm:"column:value_title" json:"value_title"`
	ValueDescription *string   `gorm:"column:value_description" json:"value_description"`
	ValueIcon        *string   `gorm:"column:value_icon" json:"value_icon"`
	ValueColor       string    `gorm:"column:value_color" json:"value_color"`
	ValueOrder       int       `gorm:"column:value_order" json:"value_order"`
	IsActive         bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSValue) TableName() string {
	return "cms_values"
}

type CMSTeamMember struct {
	ID                 int       `gorm:"primaryKey;column:id" json:"id"`
	PageID             int       `gorm:"column:page_id" json:"page_id"`
	MemberName         string    `gorm:"column:member_name" json:"member_name"`
	MemberRole         *string   `gorm:"column:member_role" json:"member_role"`
	MemberOrganization *string   `gorm:"column:member_organization" json:"member_organization"`
	MemberBio          *string   `gorm:"column:member_bio" json:"member_bio"`
	MemberImageURL     *string   `gorm:"column:member_image_url" json:"member_image_url"`
	IsFeatured         bool      `gorm:"column:is_featured" json:"is_featured"`
	MemberOrder        int       `gorm:"column:member_order" json:"member_order"`
	IsActive           bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSTeamMember) TableName() string {
	return "cms_team_members"
}

type CMSTimelineItem struct {
	ID                  int       `gorm:"primaryKey;column:id" json:"id"`
	PageID              int       `gorm:"column:page_id" json:"page_id"`
	TimelineYear        string    `gorm:"column:timeline_year" json:"timeline_year"`
	TimelineTitle       string    `gorm:"column:timeline_title" json:"timeline_title"`
	TimelineDescription *string   `gorm:"column:timeline_description" json:"timeline_description"`
	TimelineOrder       int       `gorm:"column:timeline_order" json:"timeline_order"`
	IsActive            bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSTimelineItem) TableName() string {
	return "cms_timeline_items"
}

// CMSHub is a contact-page hub card (regional studio or community hub).
type CMSHub struct {
	ID             int       `gorm:"primaryKey;column:id" json:"id"`
	PageID         int       `gorm:"column:page_id" json:"page_id"`
	HubTitle       string    `gorm:"column:hub_title" json:"hub_title"`
	HubDetails     *string   `gorm:"column:hub_details" json:"hub_details"`
	HubDescription *string   `gorm:"column:hub_description" json:"hub_description"`
	HubIcon        *string   `gorm:"column:hub_icon" json:"hub_icon"`
	HubOrder       int       `gorm:"column:hub_order" json:"hub_order"`
	IsActive       bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSHub) TableName() string {
	return "cms_page_hubs"
}

type CMSTestimonial struct {
	ID                  int       `gorm:"primaryKey;column:id" json:"id"`
	PageID              int       `gorm:"column:page_id" json:"page_id"`
	TestimonialName     string    `gorm:"column:testimonial_name" json:"testimonial_name"`
	TestimonialLocation *string   `gorm:"column:testimonial_location" json:"testimonial_location"`
	TestimonialRole     *string   `gorm:"column:testimonial_role" json:"testimonial_role"`
	TestimonialQuote    string    `gorm:"column:testimonial_quote" json:"testimonial_quote"`
	TestimonialImageURL *string   `gorm:"column:testimonial_image_url" json:"testimonial_image_url"`
	TestimonialOrder    int       `gorm:"column:testimonial_order" json:"testimonial_order"`
	IsActive            bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CMSTestimonial) TableName() string {
	return "cms_testimonials"
}
