package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/models"
)

// Catalog management: tiffins, the weekly menu, plans, promotions, reviews.

type UpsertTiffinRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required,min=2"`
	Description   string   `json:"description" binding:"required,min=5"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	ImageURL      *string  `json:"imageUrl"`
	ItemsIncluded []string `json:"itemsIncluded" binding:"required"`
}

func (h *AdminHandler) ListTiffins(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Tiffins())
}

func (h *AdminHandler) UpsertTiffin(c *gin.Context) {
	var req UpsertTiffinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved := h.svc.UpsertTiffin(models.TiffinPatch{
		ID:            req.ID,
		Name:          &req.Name,
		Description:   &req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		ItemsIncluded: &req.ItemsIncluded,
	})
	c.JSON(http.StatusOK, saved)
}

func (h *AdminHandler) DeleteTiffin(c *gin.Context) {
	h.svc.DeleteTiffin(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type WeeklyMenuEntryRequest struct {
	Day      string `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TiffinID string `json:"tiffinId" binding:"required"`
}

type SetWeeklyMenuRequest struct {
	Entries []WeeklyMenuEntryRequest `json:"entries" binding:"required,dive"`
}

func (h *AdminHandler) GetWeeklyMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.WeeklyMenu())
}

// SetWeeklyMenu replaces the weekly menu wholesale
func (h *AdminHandler) SetWeeklyMenu(c *gin.Context) {
	var req SetWeeklyMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	days := make([]models.WeeklyMenuDay, 0, len(req.Entries))
	for _, entry := range req.Entries {
		days = append(days, models.WeeklyMenuDay{Day: entry.Day, TiffinID: entry.TiffinID})
	}
	c.JSON(http.StatusOK, h.svc.SetWeeklyMenu(days))
}

type UpsertPlanRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" binding:"required,min=3"`
	BillingCycle string   `json:"billingCycle" binding:"required,oneof=daily weekly monthly"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Description  string   `json:"description" binding:"required,min=10"`
	Perks        []string `json:"perks" binding:"required"`
}

func (h *AdminHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Plans())
}

func (h *AdminHandler) UpsertPlan(c *gin.Context) {
	var req UpsertPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cycle := models.BillingCycle(req.BillingCycle)
	saved := h.svc.UpsertPlan(models.PlanPatch{
		ID:           req.ID,
		Name:         &req.Name,
		BillingCycle: &cycle,
		Price:        req.Price,
		Description:  &req.Description,
		Perks:        &req.Perks,
	})
	c.JSON(http.StatusOK, saved)
}

func (h *AdminHandler) DeletePlan(c *gin.Context) {
	h.svc.DeletePlan(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type UpsertPromotionRequest struct {
	ID              string   `json:"id"`
	Title           string   `json:"title" binding:"required,min=3"`
	Description     string   `json:"description" binding:"required,min=10"`
	DiscountPercent *float64 `json:"discountPercent" binding:"required,gte=0,lte=100"`
	ValidUntil      *string  `json:"validUntil"`
	Active          *bool    `json:"active"`
}

func (h *AdminHandler) ListPromotions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Promotions())
}

func (h *AdminHandler) UpsertPromotion(c *gin.Context) {
	var req UpsertPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved := h.svc.UpsertPromotion(models.PromotionPatch{
		ID:              req.ID,
		Title:           &req.Title,
		Description:     &req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidUntil:      req.ValidUntil,
		Active:          req.Active,
	})
	c.JSON(http.StatusOK, saved)
}

func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	h.svc.DeletePromotion(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type UpsertReviewRequest struct {
	ID      string  `json:"id"`
	Author  *string `json:"author"`
	Rating  *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
	Source  *string `json:"source" binding:"omitempty,oneof=google in-app"`
}

func (h *AdminHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reviews())
}

func (h *AdminHandler) UpsertReview(c *gin.Context) {
	var req UpsertReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := models.ReviewPatch{
		ID:      req.ID,
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if req.Source != nil {
		source := models.ReviewSource(*req.Source)
		patch.Source = &source
	}
	c.JSON(http.StatusOK, h.svc.UpsertReview(patch))
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	h.svc.DeleteReview(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
