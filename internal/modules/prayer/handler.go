package prayer

import (
	"github.com/gin-gonic/gin"
	"github.com/prayful/core/internal/models"
	"github.com/prayful/core/internal/pkg/pagination"
	"github.com/prayful/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/prayers")
	g.POST("/generate", h.generate)
	g.POST("/feedback", h.saveFeedback)
	g.GET("/cached", h.listCached)
	g.GET("/feedback", h.listFeedback)
}

// POST /prayers/generate
func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	prayer, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"prayer":  prayer,
	})
}

// POST /prayers/feedback
func (h *Handler) saveFeedback(c *gin.Context) {
	var fb Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := fb.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.SaveFeedback(fb); err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "피드백이 성공적으로 저장되었습니다.",
	})
}

// GET /prayers/cached
func (h *Handler) listCached(c *gin.Context) {
	q := pagination.FromContext(c)

	var rows []models.PrayerCacheModel
	page, err := pagination.Paginate(
		h.svc.db.Model(&models.PrayerCacheModel{}).Order("created_at DESC"), q, &rows)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, rows, page)
}

// GET /prayers/feedback
func (h *Handler) listFeedback(c *gin.Context) {
	q := pagination.FromContext(c)

	var rows []models.PrayerFeedbackModel
	page, err := pagination.Paginate(
		h.svc.db.Model(&models.PrayerFeedbackModel{}).Order("created_at DESC"), q, &rows)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, rows, page)
}
