package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
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
	h.db.Model(&models.AuditLog{}).Where("shop_id = ?", shopID).Count(&total)

	var logs []models.AuditLog
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.Paged(c, int(total), page, perPage, logs)
}
