package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	Body   string `json:"review_body" binding:"required"`
	Rating *int   `json:"review_rating" binding:"required"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Review body and rating are required.")
		return
	}

	if *req.Rating < 1 || *req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	review := models.ShopReview{
		ShopID: shopID,
		Body:   req.Body,
		Rating: *req.Rating,
	}
	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not create review.")
		return
	}

	httpresp.Created(c, gin.H{
		"message":   "Review submitted successfully.",
		"review_id": review.ID,
	})
}

func (h *ReviewHandler) List(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	page, perPage := pageParams(c)

	var total int64
	h.db.Model(&models.ShopReview{}).Where("shop_id = ?", shopID).Count(&total)

	var reviews []models.ShopReview
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.Paged(c, int(total), page, perPage, reviews)
}
