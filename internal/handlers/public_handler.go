package handlers

import (
	"math"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/geo"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

// nearbyRadiusKm bounds the public shop search.
const nearbyRadiusKm = 5.0

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

type NearbyShop struct {
	ShopID     uuid.UUID `json:"shop_id"`
	Name       string    `json:"shop_name"`
	Address    string    `json:"address"`
	DistanceKm float64   `json:"distance_km"`
}

func (h *PublicHandler) NearbyShops(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		httperr.BadRequest(c, "invalid_coordinates", "latitude and longitude are required.")
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		httperr.BadRequest(c, "invalid_coordinates", "Coordinates are out of range.")
		return
	}

	var shops []models.ShopProfile
	if err := h.db.Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not search for shops.")
		return
	}

	nearby := make([]NearbyShop, 0)
	for _, shop := range shops {
		if shop.Latitude == 0 && shop.Longitude == 0 {
			continue
		}
		dist := geo.DistanceKm(lat, lon, shop.Latitude, shop.Longitude)
		if dist > nearbyRadiusKm {
			continue
		}
		nearby = append(nearby, NearbyShop{
			ShopID:     shop.ID,
			Name:       shop.Name,
			Address:    shop.Address,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	httpresp.List(c, nearby)
}
