package prayer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestValidate(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		req := GenerateRequest{Title: "기도 제목"}
		require.NoError(t, req.Validate())
		assert.Equal(t, ToneWarm, req.Tone)
		assert.Equal(t, LengthShort, req.Length)
	})

	t.Run("requires title", func(t *testing.T) {
		req := GenerateRequest{Title: "   "}
		assert.Error(t, req.Validate())
	})

	t.Run("title length limit counts runes", func(t *testing.T) {
		req := GenerateRequest{Title: strings.Repeat("가", 100)}
		require.NoError(t, req.Validate())

		req = GenerateRequest{Title: strings.Repeat("가", 101)}
		assert.Error(t, req.Validate())
	})

	t.Run("situation length limit", func(t *testing.T) {
		req := GenerateRequest{Title: "기도", Situation: strings.Repeat("상", 500)}
		require.NoError(t, req.Validate())

		req = GenerateRequest{Title: "기도", Situation: strings.Repeat("상", 501)}
		assert.Error(t, req.Validate())
	})

	t.Run("rejects unknown tone and length", func(t *testing.T) {
		req := GenerateRequest{Title: "기도", Tone: "solemn"}
		assert.Error(t, req.Validate())

		req = GenerateRequest{Title: "기도", Length: "medium"}
		assert.Error(t, req.Validate())
	})
}

func TestFeedbackValidate(t *testing.T) {
	valid := Feedback{PrayerID: "prayer_1", Rating: 5}
	assert.NoError(t, valid.Validate())

	missing := Feedback{Rating: 3}
	assert.Error(t, missing.Validate())

	for _, rating := range []int{0, 6, -1} {
		fb := Feedback{PrayerID: "prayer_1", Rating: rating}
		assert.Error(t, fb.Validate(), rating)
	}
}
