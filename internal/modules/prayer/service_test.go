package prayer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prayful/core/internal/config"
	"github.com/prayful/core/internal/database"
	"github.com/prayful/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		Providers: []config.AIProvider{
			{ID: "test", Name: "Test", Type: "openai", APIKey: "test-key", Enabled: true},
		},
	}
}

func newTestService(t *testing.T, aiCfg config.AIConfig) *Service {
	t.Helper()
	return NewService(newTestDB(t), aiCfg, zap.NewNop(), testRNG(1))
}

func TestGenerate_CacheRoundTrip(t *testing.T) {
	svc := newTestService(t, testAIConfig())

	calls := 0
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		calls++
		return "은혜로운 기도문입니다. 아멘.", nil
	}

	req := GenerateRequest{Title: "감사 기도", Tone: ToneWarm, Length: LengthShort}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, strings.HasPrefix(first.ID, "prayer_"))

	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, 1, calls)
}

func TestGenerate_ExpiredCacheEntryIsMiss(t *testing.T) {
	svc := newTestService(t, testAIConfig())

	content := "첫 번째 기도문입니다."
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		return content, nil
	}

	req := GenerateRequest{Title: "건강을 위한 기도", Tone: ToneWarm, Length: LengthShort}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	base := time.Now()
	svc.now = func() time.Time { return base.Add(cacheTTL + time.Hour) }
	content = "두 번째 기도문입니다."

	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.Equal(t, "두 번째 기도문입니다.", second.Content)
}

func TestGenerate_FallbackOnProviderError(t *testing.T) {
	svc := newTestService(t, testAIConfig())
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		return "", providerError(ErrRateLimited, errors.New("quota exceeded"))
	}

	req := GenerateRequest{Title: "시험을 위한 기도", Tone: ToneWarm, Length: LengthShort}

	prayer, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, prayer.Content)
	assert.False(t, prayer.Cached)
	assert.True(t, strings.HasPrefix(prayer.ID, "fallback_"))

	// fallback results are not written to the cache
	var count int64
	require.NoError(t, svc.db.Model(&models.PrayerCacheModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerate_FallbackOnEmptyContent(t *testing.T) {
	svc := newTestService(t, testAIConfig())
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		return "   ", nil
	}

	prayer, err := svc.Generate(context.Background(), GenerateRequest{Title: "기도", Tone: ToneWarm, Length: LengthShort})
	require.NoError(t, err)
	assert.NotEmpty(t, prayer.Content)
	assert.True(t, strings.HasPrefix(prayer.ID, "fallback_"))
}

func TestGenerate_NoProviderUsesFallback(t *testing.T) {
	svc := newTestService(t, config.AIConfig{})

	called := false
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		called = true
		return "should not be used", nil
	}

	prayer, err := svc.Generate(context.Background(), GenerateRequest{Title: "기도", Tone: ToneWarm, Length: LengthShort})
	require.NoError(t, err)
	assert.NotEmpty(t, prayer.Content)
	assert.False(t, called)
}

func TestGenerate_ConcurrentFallbacks(t *testing.T) {
	svc := newTestService(t, testAIConfig())
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		return "", providerError(ErrTimeout, errors.New("upstream timeout"))
	}

	const workers = 8
	start := make(chan struct{})
	results := make([]*GeneratedPrayer, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = svc.Generate(context.Background(),
				GenerateRequest{Title: "기도", Tone: ToneWarm, Length: LengthShort})
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		assert.NotEmpty(t, results[i].Content)
		assert.True(t, strings.HasPrefix(results[i].ID, "fallback_"))
	}
}

func TestPurgeExpiredCache(t *testing.T) {
	svc := newTestService(t, testAIConfig())
	svc.generateText = func(ctx context.Context, provider *config.AIProvider, systemPrompt, prompt string) (string, error) {
		return "기도문", nil
	}

	_, err := svc.Generate(context.Background(), GenerateRequest{Title: "기도", Tone: ToneWarm, Length: LengthShort})
	require.NoError(t, err)

	base := time.Now()
	svc.now = func() time.Time { return base.Add(cacheTTL + time.Hour) }
	require.NoError(t, svc.PurgeExpiredCache(context.Background()))

	var count int64
	require.NoError(t, svc.db.Model(&models.PrayerCacheModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
