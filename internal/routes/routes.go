package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shearbook/barbershop-api/internal/audit"
	"github.com/shearbook/barbershop-api/internal/cache"
	"github.com/shearbook/barbershop-api/internal/clock"
	"github.com/shearbook/barbershop-api/internal/handlers"
	"github.com/shearbook/barbershop-api/internal/infra/repository"
	"github.com/shearbook/barbershop-api/internal/metrics"
	ucBooking "github.com/shearbook/barbershop-api/internal/usecase/booking"
)

// Setup builds every use case and handler and registers the API surface.
func Setup(
	r *gin.Engine,
	db *gorm.DB,
	slots *cache.SlotsCache,
	m *metrics.Metrics,
	log *zap.Logger,
) {
	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), log)
	clk := clock.System()

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewGetAvailableSlots(repo, slots),
		ucBooking.NewCreateBooking(repo, slots, dispatcher),
		ucBooking.NewUpdateBookingStatus(repo, slots, dispatcher),
		ucBooking.NewListBookings(repo, clk),
		ucBooking.NewDisableSlot(repo, slots, dispatcher, clk),
		ucBooking.NewGetEarnings(repo, clk),
		m,
	)

	shopHandler := handlers.NewShopHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	userHandler := handlers.NewUserHandler(db)
	publicHandler := handlers.NewPublicHandler(db)
	auditHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")

	// ====== USERS ======
	users := api.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/:user_id/profile", userHandler.CreateProfile)
		users.PUT("/:user_id/profile", userHandler.UpdateProfile)
	}

	// ====== SHOPS ======
	shops := api.Group("/shops")
	{
		shops.POST("", shopHandler.Create)
		shops.GET("/nearby", publicHandler.NearbyShops)
		shops.GET("/:shop_id", shopHandler.GetDetails)
		shops.PUT("/:shop_id", shopHandler.Update)
		shops.POST("/:shop_id/barbers", shopHandler.CreateBarber)

		shops.POST("/:shop_id/settings", settingsHandler.Create)
		shops.PUT("/:shop_id/settings", settingsHandler.Update)

		shops.POST("/:shop_id/services", serviceHandler.Create)
		shops.GET("/:shop_id/services", serviceHandler.List)
		shops.PUT("/:shop_id/services/:service_id", serviceHandler.Update)

		shops.POST("/:shop_id/reviews", reviewHandler.Create)
		shops.GET("/:shop_id/reviews", reviewHandler.List)

		shops.GET("/:shop_id/audit-logs", auditHandler.List)
	}

	// ====== BOOKINGS ======
	{
		shops.GET("/:shop_id/slots", bookingHandler.GetAvailableSlots)
		shops.POST("/:shop_id/slots/disable", bookingHandler.DisableSlot)
		shops.POST("/:shop_id/bookings", bookingHandler.Create)
		shops.GET("/:shop_id/bookings", bookingHandler.List)
		shops.GET("/:shop_id/earnings", bookingHandler.Earnings)

		api.PATCH("/bookings/:booking_id/status", bookingHandler.UpdateStatus)
	}
}
