package tts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prayful/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/tts")
	g.POST("/openai", h.openAI)
	g.POST("/google", h.google)
}

// POST /tts/openai
func (h *Handler) openAI(c *gin.Context) {
	h.synthesize(c, h.svc.SynthesizeOpenAI)
}

// POST /tts/google
func (h *Handler) google(c *gin.Context) {
	h.synthesize(c, h.svc.SynthesizeGoogle)
}

func (h *Handler) synthesize(c *gin.Context, fn func(context.Context, SpeechRequest) ([]byte, error)) {
	var req SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	audio, err := fn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingKey):
			response.ServiceUnavailable(c, "음성 서비스가 설정되지 않았습니다.")
		case errors.Is(err, ErrQuota):
			response.TooManyRequests(c, "음성 서비스 사용량을 초과했습니다. 잠시 후 다시 시도해주세요.")
		default:
			response.InternalError(c, err)
		}
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
