package controllers

import (
	"net/http"
	"sufipulse-api/config"
	"sufipulse-api/models"
	"time"

	"github.com/gin-gonic/gin"
)

// GetCMSPageBySlug returns an active page with all of its active sections,
// each ordered by its own order column.
func GetCMSPageBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var page models.CMSPage
	if err := config.DB.Where("page_slug = ? AND is_active = ?", slug, true).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var stats []models.CMSStat
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("stat_order ASC").Find(&stats)

	var values []models.CMSValue
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("value_order ASC").Find(&values)

	var team []models.CMSTeamMember
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("member_order ASC").Find(&team)

	var timeline []models.CMSTimelineItem
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("timeline_order ASC").Find(&timeline)

	var testimonials []models.CMSTestimonial
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("testimonial_order ASC").Find(&testimonials)

	var hubs []models.CMSHub
	config.DB.Where("page_id = ? AND is_active = ?", page.ID, true).
		Order("hub_order ASC").Find(&hubs)

	c.JSON(http.StatusOK, gin.H{
		"page":         page,
		"stats":        stats,
		"values":       values,
		"team":         team,
		"timeline":     timeline,
		"testimonials": testimonials,
		"hubs":         hubs,
	})
}

// GetCMSPages lists active pages for navigation.
func GetCMSPages(c *gin.Context) {
	var pages []models.CMSPage
	if err := config.DB.Where("is_active = ?", true).
		Order("page_name ASC").
		Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetAdminCMSPages lists every page, active or not.
func GetAdminCMSPages(c *gin.Context) {
	var pages []models.CMSPage
	if err := config.DB.Order("page_name ASC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// CreateCMSPage creates a page. The slug must be unique.
func CreateCMSPage(c *gin.Context) {
	var page models.CMSPage
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if page.PageSlug == "" || page.PageName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_name and page_slug are required"})
		return
	}

	var existing models.CMSPage
	if err := config.DB.Where("page_slug = ?", page.PageSlug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A page with this slug already exists"})
		return
	}

	page.ID = 0
	page.CreatedAt = time.Now()
	page.UpdatedAt = page.CreatedAt
	if err := config.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Page created successfully", "page": page})
}

// UpdateCMSPage overwrites an existing page.
func UpdateCMSPage(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSPage
	if err := config.DB.Where("id = ?", pageID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var page models.CMSPage
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page.ID = existing.ID
	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = time.Now()
	if err := config.DB.Save(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page updated successfully", "page": page})
}

// DeleteCMSPage removes a page and all of its sections.
func DeleteCMSPage(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var page models.CMSPage
	if err := config.DB.Where("id = ?", pageID).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSStat{})
	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSValue{})
	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSTeamMember{})
	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSTimelineItem{})
	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSTestimonial{})
	config.DB.Where("page_id = ?", pageID).Delete(&models.CMSHub{})

	if err := config.DB.Delete(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}

// cmsPageExists 404s when the parent page is missing.
func cmsPageExists(c *gin.Context, pageID int) bool {
	var page models.CMSPage
	if err := config.DB.Where("id = ?", pageID).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return false
	}
	return true
}

// GetCMSStats lists a page's stats.
func GetCMSStats(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var stats []models.CMSStat
	config.DB.Where("page_id = ?", pageID).Order("stat_order ASC").Find(&stats)
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// CreateCMSStat adds a stat to a page.
func CreateCMSStat(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var stat models.CMSStat
	if err := c.ShouldBindJSON(&stat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stat.ID = 0
	stat.PageID = pageID
	stat.CreatedAt = time.Now()
	stat.UpdatedAt = stat.CreatedAt
	if err := config.DB.Create(&stat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stat"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stat created successfully", "stat": stat})
}

// UpdateCMSStat overwrites a stat.
func UpdateCMSStat(c *gin.Context) {
	statID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSStat
	if err := config.DB.Where("id = ?", statID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stat not found"})
		return
	}

	var stat models.CMSStat
	if err := c.ShouldBindJSON(&stat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stat.ID = existing.ID
	stat.PageID = existing.PageID
	stat.CreatedAt = existing.CreatedAt
	stat.UpdatedAt = time.Now()
	if err := config.DB.Save(&stat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stat updated successfully", "stat": stat})
}

// DeleteCMSStat removes a stat.
func DeleteCMSStat(c *gin.Context) {
	statID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", statID).Delete(&models.CMSStat{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stat"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stat not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stat deleted successfully"})
}

// GetCMSValues lists a page's values.
func GetCMSValues(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var values []models.CMSValue
	config.DB.Where("page_id = ?", pageID).Order("value_order ASC").Find(&values)
	c.JSON(http.StatusOK, gin.H{"values": values})
}

// CreateCMSValue adds a value card to a page.
func CreateCMSValue(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var value models.CMSValue
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value.ID = 0
	value.PageID = pageID
	value.CreatedAt = time.Now()
	value.UpdatedAt = value.CreatedAt
	if err := config.DB.Create(&value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create value"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Value created successfully", "value": value})
}

// UpdateCMSValue overwrites a value card.
func UpdateCMSValue(c *gin.Context) {
	valueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSValue
	if err := config.DB.Where("id = ?", valueID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Value not found"})
		return
	}

	var value models.CMSValue
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value.ID = existing.ID
	value.PageID = existing.PageID
	value.CreatedAt = existing.CreatedAt
	value.UpdatedAt = time.Now()
	if err := config.DB.Save(&value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update value"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Value updated successfully", "value": value})
}

// DeleteCMSValue removes a value card.
func DeleteCMSValue(c *gin.Context) {
	valueID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", valueID).Delete(&models.CMSValue{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete value"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Value not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Value deleted successfully"})
}

// GetCMSTeam lists a page's team members.
func GetCMSTeam(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var team []models.CMSTeamMember
	config.DB.Where("page_id = ?", pageID).Order("member_order ASC").Find(&team)
	c.JSON(http.StatusOK, gin.H{"team": team})
}

// CreateCMSTeamMember adds a team member to a page.
func CreateCMSTeamMember(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var member models.CMSTeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.ID = 0
	member.PageID = pageID
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Team member created successfully", "member": member})
}

// UpdateCMSTeamMember overwrites a team member.
func UpdateCMSTeamMember(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSTeamMember
	if err := config.DB.Where("id = ?", memberID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	var member models.CMSTeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.ID = existing.ID
	member.PageID = existing.PageID
	member.CreatedAt = existing.CreatedAt
	member.UpdatedAt = time.Now()
	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member updated successfully", "member": member})
}

// DeleteCMSTeamMember removes a team member.
func DeleteCMSTeamMember(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", memberID).Delete(&models.CMSTeamMember{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// GetCMSTimeline lists a page's timeline items.
func GetCMSTimeline(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var timeline []models.CMSTimelineItem
	config.DB.Where("page_id = ?", pageID).Order("timeline_order ASC").Find(&timeline)
	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}

// CreateCMSTimelineItem adds a timeline item to a page.
func CreateCMSTimelineItem(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var item models.CMSTimelineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = 0
	item.PageID = pageID
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create timeline item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Timeline item created successfully", "item": item})
}

// UpdateCMSTimelineItem overwrites a timeline item.
func UpdateCMSTimelineItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSTimelineItem
	if err := config.DB.Where("id = ?", itemID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timeline item not found"})
		return
	}

	var item models.CMSTimelineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = existing.ID
	item.PageID = existing.PageID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update timeline item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeline item updated successfully", "item": item})
}

// DeleteCMSTimelineItem removes a timeline item.
func DeleteCMSTimelineItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", itemID).Delete(&models.CMSTimelineItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timeline item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timeline item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeline item deleted successfully"})
}

// GetCMSTestimonials lists a page's testimonials.
func GetCMSTestimonials(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var testimonials []models.CMSTestimonial
	config.DB.Where("page_id = ?", pageID).Order("testimonial_order ASC").Find(&testimonials)
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateCMSTestimonial adds a testimonial to a page.
func CreateCMSTestimonial(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var testimonial models.CMSTestimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial.ID = 0
	testimonial.PageID = pageID
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = testimonial.CreatedAt
	if err := config.DB.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Testimonial created successfully", "testimonial": testimonial})
}

// UpdateCMSTestimonial overwrites a testimonial.
func UpdateCMSTestimonial(c *gin.Context) {
	testimonialID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSTestimonial
	if err := config.DB.Where("id = ?", testimonialID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var testimonial models.CMSTestimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial.ID = existing.ID
	testimonial.PageID = existing.PageID
	testimonial.CreatedAt = existing.CreatedAt
	testimonial.UpdatedAt = time.Now()
	if err := config.DB.Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial updated successfully", "testimonial": testimonial})
}

// DeleteCMSTestimonial removes a testimonial.
func DeleteCMSTestimonial(c *gin.Context) {
	testimonialID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", testimonialID).Delete(&models.CMSTestimonial{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}

// GetCMSHubs lists a page's hubs.
func GetCMSHubs(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var hubs []models.CMSHub
	config.DB.Where("page_id = ?", pageID).Order("hub_order ASC").Find(&hubs)
	c.JSON(http.StatusOK, gin.H{"hubs": hubs})
}

// CreateCMSHub adds a hub card to a page.
func CreateCMSHub(c *gin.Context) {
	pageID, ok := pathID(c, "id")
	if !ok || !cmsPageExists(c, pageID) {
		return
	}

	var hub models.CMSHub
	if err := c.ShouldBindJSON(&hub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hub.ID = 0
	hub.PageID = pageID
	hub.CreatedAt = time.Now()
	hub.UpdatedAt = hub.CreatedAt
	if err := config.DB.Create(&hub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hub"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hub created successfully", "hub": hub})
}

// UpdateCMSHub overwrites a hub card.
func UpdateCMSHub(c *gin.Context) {
	hubID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var existing models.CMSHub
	if err := config.DB.Where("id = ?", hubID).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hub not found"})
		return
	}

	var hub models.CMSHub
	if err := c.ShouldBindJSON(&hub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hub.ID = existing.ID
	hub.PageID = existing.PageID
	hub.CreatedAt = existing.CreatedAt
	hub.UpdatedAt = time.Now()
	if err := config.DB.Save(&hub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hub"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hub updated successfully", "hub": hub})
}

// DeleteCMSHub removes a hub card.
func DeleteCMSHub(c *gin.Context) {
	hubID, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := config.DB.Where("id = ?", hubID).Delete(&models.CMSHub{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hub"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hub not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hub deleted successfully"})
}
