package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prayful/core/internal/config"
	"go.uber.org/zap"
)

const (
	openAISpeechURL = "https://api.openai.com/v1/audio/speech"
	googleTTSURL    = "https://texttospeech.googleapis.com/v1/text:synthesize"

	defaultOpenAIModel = "tts-1"
	defaultOpenAIVoice = "fable"
	defaultGoogleVoice = "ko-KR-Neural2-A"

	requestTimeout = 30 * time.Second
)

var (
	ErrMissingKey = errors.New("TTS api key is not configured")
	ErrQuota      = errors.New("TTS quota exceeded")
)

// Service proxies text-to-speech requests so API keys stay server side.
type Service struct {
	cfg    config.TTSConfig
	logger *zap.Logger
	client *http.Client
}

func NewService(cfg config.TTSConfig, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type SpeechRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}

func (r *SpeechRequest) normalize(defaultVoice string) error {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return errors.New("text is required")
	}
	if r.Voice == "" {
		r.Voice = defaultVoice
	}
	if r.Speed == 0 {
		r.Speed = 1.0
	}
	if r.Speed < 0.25 {
		r.Speed = 0.25
	}
	if r.Speed > 4.0 {
		r.Speed = 4.0
	}
	return nil
}

// SynthesizeOpenAI returns MP3 audio from the OpenAI speech API.
func (s *Service) SynthesizeOpenAI(ctx context.Context, req SpeechRequest) ([]byte, error) {
	apiKey := strings.TrimSpace(s.cfg.OpenAIAPIKey)
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	if err := req.normalize(defaultOpenAIVoice); err != nil {
		return nil, err
	}

	body, _ := json.Marshal(map[string]interface{}{
		"model":           defaultOpenAIModel,
		"input":           req.Text,
		"voice":           req.Voice,
		"speed":           req.Speed,
		"response_format": "mp3",
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAISpeechURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		s.logger.Warn("openai tts request failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, ErrMissingKey
		case http.StatusTooManyRequests:
			return nil, ErrQuota
		default:
			return nil, fmt.Errorf("openai tts error: status %d", resp.StatusCode)
		}
	}

	return io.ReadAll(resp.Body)
}

// SynthesizeGoogle returns MP3 audio from the Google Cloud TTS REST API.
// Google responds with base64 in JSON, which gets decoded here.
func (s *Service) SynthesizeGoogle(ctx context.Context, req SpeechRequest) ([]byte, error) {
	apiKey := strings.TrimSpace(s.cfg.GoogleAPIKey)
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	if err := req.normalize(defaultGoogleVoice); err != nil {
		return nil, err
	}

	body, _ := json.Marshal(map[string]interface{}{
		"input": map[string]string{"text": req.Text},
		"voice": map[string]string{
			"languageCode": "ko-KR",
			"name":         req.Voice,
		},
		"audioConfig": map[string]interface{}{
			"audioEncoding": "MP3",
			"speakingRate":  req.Speed,
		},
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		googleTTSURL+"?key="+apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("google tts request failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, ErrMissingKey
		case http.StatusTooManyRequests:
			return nil, ErrQuota
		default:
			return nil, fmt.Errorf("google tts error: status %d", resp.StatusCode)
		}
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}
	if result.AudioContent == "" {
		return nil, errors.New("google tts returned no audio")
	}
	return base64.StdEncoding.DecodeString(result.AudioContent)
}
