package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shearbook/barbershop-api/internal/cache"
	"github.com/shearbook/barbershop-api/internal/config"
	"github.com/shearbook/barbershop-api/internal/db"
	"github.com/shearbook/barbershop-api/internal/logger"
	"github.com/shearbook/barbershop-api/internal/metrics"
	"github.com/shearbook/barbershop-api/internal/middleware"
	"github.com/shearbook/barbershop-api/internal/routes"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg := config.Load()

	gormDB := db.NewDB(cfg, log)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	slots := cache.NewSlotsCache(redisClient)

	m := metrics.New("barbershop-api")

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(r, gormDB, slots, m, log)

	log.Info("starting server", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
