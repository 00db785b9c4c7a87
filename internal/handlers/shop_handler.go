package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateShopRequest struct {
	Name      string   `json:"shop_name" binding:"required"`
	AboutUs   string   `json:"about_us" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Phone     string   `json:"phone_number" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Amenities []string `json:"venue_amenities"`
}

type UpdateShopRequest struct {
	Name      *string  `json:"shop_name"`
	AboutUs   *string  `json:"about_us"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone_number"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Amenities []string `json:"venue_amenities"`
}

type CreateBarberRequest struct {
	Name  string `json:"barber_name" binding:"required"`
	Phone string `json:"phone_number" binding:"required"`
}

// ======================================================
// CREATE / UPDATE PROFILE
// ======================================================

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All profile fields are required.")
		return
	}

	shop := models.ShopProfile{
		Name:      req.Name,
		AboutUs:   req.AboutUs,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Amenities: strings.Join(req.Amenities, ":"),
	}
	if req.Latitude != nil {
		shop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		shop.Longitude = *req.Longitude
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop", "Could not create shop profile.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Shop profile created successfully.",
		"shop_id": shop.ID,
	})
}

func (h *ShopHandler) Update(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Could not load shop profile.")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.AboutUs != nil {
		shop.AboutUs = *req.AboutUs
	}
	if req.Email != nil {
		shop.Email = *req.Email
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Latitude != nil {
		shop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		shop.Longitude = *req.Longitude
	}
	if req.Amenities != nil {
		shop.Amenities = strings.Join(req.Amenities, ":")
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not update shop profile.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Shop profile updated successfully."})
}

// ======================================================
// DETAILS
// ======================================================

func (h *ShopHandler) GetDetails(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Could not load shop profile.")
		return
	}

	httpresp.OK(c, gin.H{
		"about_us":        shop.AboutUs,
		"phone_number":    shop.Phone,
		"venue_amenities": shop.AmenityList(),
	})
}

// ======================================================
// BARBERS
// ======================================================

func (h *ShopHandler) CreateBarber(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Barber name and phone number are required.")
		return
	}

	var count int64
	h.db.Model(&models.BarberDetails{}).
		Where("shop_id = ? AND phone = ?", shopID, req.Phone).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_phone", "A barber with this phone number already exists for this shop.")
		return
	}

	barber := models.BarberDetails{
		ShopID: shopID,
		Name:   req.Name,
		Phone:  req.Phone,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber details.")
		return
	}

	httpresp.Created(c, gin.H{
		"message":   "Barber details created successfully.",
		"barber_id": barber.ID,
	})
}
