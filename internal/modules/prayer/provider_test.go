package prayer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prayful/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"rate limit message", errors.New("openai: rate limit exceeded"), ErrRateLimited},
		{"quota message", errors.New("insufficient_quota for this key"), ErrRateLimited},
		{"auth message", errors.New("invalid_api_key provided"), ErrAuthFailed},
		{"status 401", errors.New("unexpected status 401"), ErrAuthFailed},
		{"timeout message", errors.New("request timeout while waiting"), ErrTimeout},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"unknown", errors.New("something else went wrong"), ErrOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := classifyProviderError(tt.err)
			assert.Equal(t, tt.want, pe.Kind)
		})
	}
}

func TestClassifyProviderError_KeepsExistingKind(t *testing.T) {
	orig := providerError(ErrRateLimited, errors.New("wrapped"))
	pe := classifyProviderError(orig)
	assert.Equal(t, ErrRateLimited, pe.Kind)
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	pe := providerError(ErrTimeout, inner)
	assert.ErrorIs(t, pe, inner)
}

func TestKindFromStatus(t *testing.T) {
	assert.Equal(t, ErrRateLimited, kindFromStatus(http.StatusTooManyRequests))
	assert.Equal(t, ErrAuthFailed, kindFromStatus(http.StatusUnauthorized))
	assert.Equal(t, ErrAuthFailed, kindFromStatus(http.StatusForbidden))
	assert.Equal(t, ErrTimeout, kindFromStatus(http.StatusGatewayTimeout))
	assert.Equal(t, ErrOther, kindFromStatus(http.StatusInternalServerError))
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	assert.Equal(t, "", normalizeOpenAIBaseURL(""))
	assert.Equal(t, "https://api.example.com/v1", normalizeOpenAIBaseURL("https://api.example.com"))
	assert.Equal(t, "https://api.example.com/v1", normalizeOpenAIBaseURL("https://api.example.com/v1/"))
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.openai.com", normalizeOpenAICompatibleEndpoint(""))
	assert.Equal(t, "https://llm.example.com", normalizeOpenAICompatibleEndpoint("https://llm.example.com/v1/"))
	assert.Equal(t, "https://llm.example.com", normalizeOpenAICompatibleEndpoint("https://llm.example.com"))
}

func TestSelectProvider(t *testing.T) {
	cfg := config.AIConfig{
		Providers: []config.AIProvider{
			{ID: "disabled", Type: "openai", Enabled: false},
			{ID: "first", Type: "openai", DefaultModel: "gpt-4o-mini", Enabled: true},
			{ID: "second", Type: "anthropic", DefaultModel: "claude-haiku-4-5-20251001", Enabled: true},
		},
	}

	got := selectProvider(cfg)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.ID)

	cfg.GenerationModel = &config.AIModelAssignment{ProviderID: "second", Model: "claude-sonnet-4-5"}
	got = selectProvider(cfg)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.ID)
	assert.Equal(t, "claude-sonnet-4-5", got.DefaultModel)

	assert.Nil(t, selectProvider(config.AIConfig{}))
}
