package prayer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_MainTopics(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"health", "어머니의 병 치료를 위해", TopicHealth},
		{"job", "면접을 앞두고 있습니다", TopicJob},
		{"family", "자녀를 위한 기도", TopicFamily},
		{"study", "수능 시험 준비", TopicStudy},
		{"marriage", "좋은 배우자를 만나게 해주세요", TopicMarriage},
		{"gratitude", "받은 은혜에 감사드립니다", TopicGratitude},
		{"general", "오늘 하루를 주님께 맡깁니다", TopicGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.title, "")
			assert.Equal(t, tt.want, got.MainTopic)
		})
	}
}

func TestAnalyze_HealthBeatsLaterTopics(t *testing.T) {
	// "건강검진" mentions both health and an exam-like word; health wins by precedence.
	got := Analyze("건강검진을 앞둔 시험같은 마음", "")
	assert.Equal(t, TopicHealth, got.MainTopic)
}

func TestAnalyze_SubTopics(t *testing.T) {
	got := Analyze("우울과 스트레스에서의 회복", "병원 치료 중입니다")
	assert.Equal(t, TopicHealth, got.MainTopic)
	assert.Contains(t, got.SubTopics, "정신건강")
	assert.Contains(t, got.SubTopics, "치료과정")
	assert.Contains(t, got.SubTopics, "회복기원")
}

func TestAnalyze_EmotionAndUrgency(t *testing.T) {
	got := Analyze("취업", "면접이 당장 내일이라 너무 불안합니다")
	assert.Equal(t, TopicJob, got.MainTopic)
	assert.Equal(t, EmotionAnxiety, got.EmotionalContext)
	assert.Equal(t, UrgencyHigh, got.UrgencyLevel)
}

func TestAnalyze_Defaults(t *testing.T) {
	got := Analyze("평범한 기도 제목", "")
	assert.Equal(t, EmotionCalm, got.EmotionalContext)
	assert.Equal(t, UrgencyNormal, got.UrgencyLevel)
	assert.Empty(t, got.SubTopics)
	assert.Empty(t, got.SpecificConcerns)
}

func TestAnalyze_SpecificConcerns(t *testing.T) {
	got := Analyze("가족을 위한 기도", "재정 문제와 부모님과의 관계, 그리고 미래가 걱정됩니다")
	assert.Contains(t, got.SpecificConcerns, "경제적 어려움")
	assert.Contains(t, got.SpecificConcerns, "인간관계")
	assert.Contains(t, got.SpecificConcerns, "미래에 대한 불안")
}

func TestPrayerContext_NeverEchoesSituation(t *testing.T) {
	situation := "회사에서 해고 통보를 받아 너무 힘든 상황입니다"
	analysis := Analyze("직장을 위한 기도", situation)

	context := PrayerContext(situation, analysis)
	assert.NotEmpty(t, context)
	assert.NotContains(t, context, "해고 통보")
	assert.True(t, strings.HasSuffix(context, "주님 앞에 나아옵니다"))
}

func TestPrayerContext_WithoutSituation(t *testing.T) {
	analysis := Analyze("감사 기도", "")
	context := PrayerContext("", analysis)
	assert.Contains(t, context, analysis.MainTopic)
}
