package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
	"github.com/shearbook/barbershop-api/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterUserRequest struct {
	Email        string `json:"email" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
}

type UserProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and mobile number are required.")
		return
	}

	if !validators.ValidEmail(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email address format is invalid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? OR mobile_number = ?", req.Email, req.MobileNumber).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "user_exists", "A user with this email or mobile number already exists.")
		return
	}

	user := models.User{
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_register", "Could not register user.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "User registered successfully.",
		"user_id": user.ID,
	})
}

// ======================================================
// PROFILE
// ======================================================

func (h *UserHandler) userIDParam(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a UUID.")
		return uuid.Nil, false
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return uuid.Nil, false
	}
	return userID, true
}

func (h *UserHandler) CreateProfile(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	var count int64
	h.db.Model(&models.UserProfile{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "profile_exists", "Profile already exists for this user.")
		return
	}

	profile := models.UserProfile{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_create_profile", "Could not create user profile.")
		return
	}

	httpresp.Created(c, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "Profile does not exist for this user.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Could not load user profile.")
		return
	}

	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update user profile.")
		return
	}

	httpresp.OK(c, profile)
}
