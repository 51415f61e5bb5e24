package session

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prayful/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/sessions")
	g.POST("", h.start)
	g.POST("/heartbeat", h.heartbeat)
	g.POST("/end", h.end)
	g.GET("/active", h.activeCount)
}

type sessionRequest struct {
	SessionID   string `json:"sessionId"`
	PrayerTitle string `json:"prayerTitle"`
}

// POST /sessions
func (h *Handler) start(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	row, err := h.svc.Start(req.SessionID, req.PrayerTitle)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, gin.H{
		"success":   true,
		"sessionId": row.SessionID,
		"startedAt": row.StartedAt,
	})
}

// POST /sessions/heartbeat
func (h *Handler) heartbeat(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Heartbeat(req.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "활성화된 기도 세션을 찾을 수 없습니다.")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, gin.H{"success": true})
}

// POST /sessions/end
func (h *Handler) end(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.End(req.SessionID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, gin.H{"success": true})
}

// GET /sessions/active
func (h *Handler) activeCount(c *gin.Context) {
	count, err := h.svc.ActiveCount()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"count": count})
}
