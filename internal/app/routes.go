package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prayful/core/internal/middleware"
	"github.com/prayful/core/internal/modules/health"
	"github.com/prayful/core/internal/modules/prayer"
	"github.com/prayful/core/internal/modules/session"
	"github.com/prayful/core/internal/modules/tts"
	pkgredis "github.com/prayful/core/internal/pkg/redis"
	"github.com/prayful/core/internal/pkg/response"
)

var processStart = time.Now()

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "prayful-core",
		"version": "1.0.0",
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	health.NewHandler(db, rc).RegisterRoutes(api)

	a.prayerSvc = prayer.NewService(db, a.cfg.AI, a.logger.Named("PrayerService"), nil)
	prayer.NewHandler(a.prayerSvc).RegisterRoutes(api)

	a.sessionSvc = session.NewService(db, a.logger.Named("SessionService"))
	session.NewHandler(a.sessionSvc).RegisterRoutes(api)

	ttsSvc := tts.NewService(a.cfg.TTS, a.logger.Named("TTSService"))
	tts.NewHandler(ttsSvc).RegisterRoutes(api)
}
