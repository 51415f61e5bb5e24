package health

import (
	"github.com/gin-gonic/gin"
	"github.com/prayful/core/internal/pkg/redis"
	"github.com/prayful/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Handler reports liveness of the service and its backing stores.
type Handler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{db: db, redis: rdb}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.check)
}

// GET /health
func (h *Handler) check(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "unavailable"
	}

	redisStatus := "ok"
	if h.redis == nil || h.redis.Ping(c.Request.Context()) != nil {
		redisStatus = "unavailable"
	}

	response.OK(c, gin.H{
		"status": "ok",
		"db":     dbStatus,
		"redis":  redisStatus,
	})
}
