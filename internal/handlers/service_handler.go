package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	DurationMin *int     `json:"duration" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, price and duration are required.")
		return
	}

	if *req.Price < 0 || *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_request", "Price and duration must be positive.")
		return
	}

	svc := models.ShopService{
		ShopID:      shopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		DurationMin: *req.DurationMin,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create shop service.")
		return
	}

	httpresp.Created(c, gin.H{
		"message":    "Shop service created successfully.",
		"shop_id":    shopID,
		"service_id": svc.ID,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be a UUID.")
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	var svc models.ShopService
	if err := h.db.
		Where("id = ? AND shop_id = ?", serviceID, shopID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found for this shop.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load shop service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update shop service.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
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
	h.db.Model(&models.ShopService{}).Where("shop_id = ?", shopID).Count(&total)

	var services []models.ShopService
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("created_at ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list shop services.")
		return
	}

	httpresp.Paged(c, int(total), page, perPage, services)
}
