package prayer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/prayful/core/internal/config"
	"github.com/prayful/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cacheTTL = 24 * time.Hour

// Service generates prayers: cache lookup, LLM generation with learned
// patterns, and a template fallback that always succeeds.
type Service struct {
	db     *gorm.DB
	aiCfg  config.AIConfig
	logger *zap.Logger

	// seed source for per-request RNGs; rand.Rand is not safe for
	// concurrent use, so it is never handed to requests directly
	rngMu sync.Mutex
	rng   *rand.Rand

	// swapped out in tests
	generateText func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error)
	now          func() time.Time
}

func NewService(db *gorm.DB, aiCfg config.AIConfig, logger *zap.Logger, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>1))
	}
	return &Service{
		db:           db,
		aiCfg:        aiCfg,
		logger:       logger,
		rng:          rng,
		generateText: callAI,
		now:          time.Now,
	}
}

// Generate runs the full pipeline: cache hit, else LLM, else fallback.
// The request must already be validated.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GeneratedPrayer, error) {
	key := CacheKey(req)

	if cached := s.cachedPrayer(key); cached != nil {
		return cached, nil
	}

	provider := selectProvider(s.aiCfg)
	if provider == nil {
		s.logger.Warn("no AI provider configured, using template fallback")
		return s.fallback(req, key), nil
	}

	learning := s.LearningData()
	analysis := Analyze(req.Title, req.Situation)
	prompt := BuildPrompt(req, analysis, learning)

	content, err := s.generateText(ctx, provider, generationSystemPrompt, prompt)
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) {
			s.logger.Warn("AI generation failed, using template fallback",
				zap.String("kind", string(pe.Kind)), zap.Error(pe.Err))
		} else {
			s.logger.Warn("AI generation failed, using template fallback", zap.Error(err))
		}
		return s.fallback(req, key), nil
	}

	content = strings.TrimSpace(content)
	if content == "" {
		s.logger.Warn("AI returned empty content, using template fallback")
		return s.fallback(req, key), nil
	}

	prayer := &GeneratedPrayer{
		ID:          fmt.Sprintf("prayer_%d_%s", s.now().UnixMilli(), randomSuffix(s.requestRand())),
		Content:     content,
		Title:       req.Title,
		Category:    req.Category,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Cached:      false,
	}

	s.saveToCache(key, prayer)
	go s.saveGenerationData(prayer, req, "openai")

	return prayer, nil
}

func (s *Service) fallback(req GenerateRequest, key string) *GeneratedPrayer {
	rng := s.requestRand()
	prayer := &GeneratedPrayer{
		ID:          fmt.Sprintf("fallback_%d_%s", s.now().UnixMilli(), randomSuffix(rng)),
		Content:     RenderFallback(req, rng),
		Title:       req.Title,
		Category:    req.Category,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Cached:      false,
	}
	go s.saveGenerationData(prayer, req, "fallback")
	return prayer
}

// cachedPrayer returns the cached prayer for a key, skipping expired rows.
// Cache errors count as misses.
func (s *Service) cachedPrayer(key string) *GeneratedPrayer {
	var row models.PrayerCacheModel
	err := s.db.
		Where("cache_key = ?", key).
		Where("expires_at > ?", s.now()).
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("prayer cache lookup failed", zap.Error(err))
		}
		return nil
	}

	return &GeneratedPrayer{
		ID:          row.ID,
		Content:     row.Content,
		Title:       row.Title,
		Category:    row.Category,
		GeneratedAt: row.GeneratedAt.UTC().Format(time.RFC3339),
		Cached:      true,
	}
}

// saveToCache upserts the generated prayer under its key. Failures are
// logged only; caching never blocks a response.
func (s *Service) saveToCache(key string, prayer *GeneratedPrayer) {
	now := s.now()
	row := models.PrayerCacheModel{
		Base:        models.Base{ID: prayer.ID},
		CacheKey:    key,
		Content:     prayer.Content,
		Title:       prayer.Title,
		Category:    prayer.Category,
		GeneratedAt: now,
		ExpiresAt:   now.Add(cacheTTL),
	}
	if err := s.db.Where("cache_key = ?", key).Assign(row).FirstOrCreate(&row).Error; err != nil {
		s.logger.Warn("prayer cache save failed", zap.Error(err))
	}
}

func (s *Service) saveGenerationData(prayer *GeneratedPrayer, req GenerateRequest, source string) {
	row := models.PrayerGenerationModel{
		PrayerID:      prayer.ID,
		Title:         req.Title,
		Category:      req.Category,
		Situation:     req.Situation,
		Tone:          req.Tone,
		Length:        req.Length,
		ContentLength: len([]rune(prayer.Content)),
		Source:        source,
	}
	if err := s.db.Create(&row).Error; err != nil {
		s.logger.Warn("generation data save failed", zap.Error(err))
	}
}

// PurgeExpiredCache deletes cache rows past their TTL. Wired as a cron job.
func (s *Service) PurgeExpiredCache(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&models.PrayerCacheModel{}).Error
}

// requestRand derives an independent RNG for one request from the guarded
// seed source, so concurrent generations never share PCG state.
func (s *Service) requestRand() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64()))
}

func randomSuffix(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 9)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}
