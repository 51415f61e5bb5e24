package prayer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestRenderFallback_AlwaysProducesContent(t *testing.T) {
	titles := []string{
		"건강 회복을 위해",
		"취업 면접을 앞두고",
		"가족의 화목을 위해",
		"시험을 앞둔 마음",
		"결혼을 준비하며",
		"감사의 기도",
		"그냥 드리는 기도",
	}

	for _, title := range titles {
		for _, length := range []string{LengthShort, LengthLong} {
			req := GenerateRequest{Title: title, Tone: ToneWarm, Length: length}
			content := RenderFallback(req, testRNG(1))
			assert.NotEmpty(t, content, title)
		}
	}
}

func TestRenderFallback_UsesToneOpeningAndClosing(t *testing.T) {
	for _, tone := range []string{ToneFormal, ToneCasual, ToneWarm} {
		req := GenerateRequest{Title: "감사 기도", Tone: tone, Length: LengthShort}
		content := RenderFallback(req, testRNG(7))

		assert.True(t, strings.HasPrefix(content, toneOpenings[tone]), tone)
		assert.True(t, strings.HasSuffix(content, toneClosings[tone]), tone)
	}
}

func TestRenderFallback_UnknownToneDefaultsToWarm(t *testing.T) {
	req := GenerateRequest{Title: "기도", Tone: "unknown", Length: LengthShort}
	content := RenderFallback(req, testRNG(3))

	assert.True(t, strings.HasPrefix(content, toneOpenings[ToneWarm]))
	assert.True(t, strings.HasSuffix(content, toneClosings[ToneWarm]))
}

func TestRenderFallback_LongerThanShort(t *testing.T) {
	short := RenderFallback(GenerateRequest{Title: "건강을 위해", Tone: ToneWarm, Length: LengthShort}, testRNG(5))
	long := RenderFallback(GenerateRequest{Title: "건강을 위해", Tone: ToneWarm, Length: LengthLong}, testRNG(5))

	assert.Greater(t, len([]rune(long)), len([]rune(short)))
}

func TestRenderFallback_DeterministicWithSeed(t *testing.T) {
	req := GenerateRequest{Title: "가족을 위한 기도", Tone: ToneWarm, Length: LengthLong}

	a := RenderFallback(req, testRNG(42))
	b := RenderFallback(req, testRNG(42))
	assert.Equal(t, a, b)
}

func TestRenderFallback_DoesNotEchoSituation(t *testing.T) {
	req := GenerateRequest{
		Title:     "취업을 위한 기도",
		Situation: "서류 전형에서 계속 떨어지고 있습니다",
		Tone:      ToneWarm,
		Length:    LengthShort,
	}
	content := RenderFallback(req, testRNG(11))
	assert.NotContains(t, content, req.Situation)
}
