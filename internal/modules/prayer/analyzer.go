package prayer

import "strings"

const (
	TopicHealth    = "건강"
	TopicJob       = "취업"
	TopicFamily    = "가족"
	TopicStudy     = "학업"
	TopicMarriage  = "결혼"
	TopicGratitude = "감사"
	TopicGeneral   = "일반"

	EmotionCalm      = "평온"
	EmotionAnxiety   = "불안"
	EmotionSadness   = "슬픔"
	EmotionGratitude = "감사"

	UrgencyNormal = "보통"
	UrgencyHigh   = "높음"
)

var (
	healthKeywords    = []string{"건강", "병", "치료", "회복", "아픈", "몸", "마음", "정신", "우울", "스트레스"}
	jobKeywords       = []string{"취업", "직장", "일자리", "면접", "회사", "사업", "승진", "이직"}
	familyKeywords    = []string{"가족", "부모", "자녀", "아이", "형제", "자매", "남편", "아내", "시부모", "처가"}
	studyKeywords     = []string{"시험", "공부", "학업", "입시", "대학", "학교", "성적", "졸업", "진학"}
	marriageKeywords  = []string{"결혼", "연애", "배우자", "만남", "데이트", "약혼", "신혼"}
	gratitudeKeywords = []string{"감사", "고마", "축복", "은혜", "기쁨", "행복"}

	anxietyKeywords = []string{"불안", "걱정", "두려", "무서", "염려", "근심"}
	urgentKeywords  = []string{"급히", "빨리", "시급", "긴급", "당장", "즉시"}
	sadnessKeywords = []string{"슬픈", "힘든", "어려운", "괴로운", "고통", "아픈"}
)

// Analyze classifies a title and optional situation into a main topic,
// sub-topics, emotional context, urgency and concrete concerns. Topic
// precedence is fixed: health, job, family, study, marriage, gratitude,
// then the general bucket.
func Analyze(title, situation string) TopicAnalysis {
	combined := strings.ToLower(strings.TrimSpace(title)) + " " + strings.ToLower(strings.TrimSpace(situation))

	analysis := TopicAnalysis{
		MainTopic:        TopicGeneral,
		SubTopics:        []string{},
		EmotionalContext: EmotionCalm,
		UrgencyLevel:     UrgencyNormal,
		SpecificConcerns: []string{},
	}

	switch {
	case containsAny(combined, healthKeywords):
		analysis.MainTopic = TopicHealth
		if strings.Contains(combined, "정신") || strings.Contains(combined, "우울") || strings.Contains(combined, "스트레스") {
			analysis.SubTopics = append(analysis.SubTopics, "정신건강")
		}
		if strings.Contains(combined, "치료") || strings.Contains(combined, "병원") {
			analysis.SubTopics = append(analysis.SubTopics, "치료과정")
		}
		if strings.Contains(combined, "회복") {
			analysis.SubTopics = append(analysis.SubTopics, "회복기원")
		}
	case containsAny(combined, jobKeywords):
		analysis.MainTopic = TopicJob
		if strings.Contains(combined, "면접") {
			analysis.SubTopics = append(analysis.SubTopics, "면접")
		}
		if strings.Contains(combined, "사업") {
			analysis.SubTopics = append(analysis.SubTopics, "사업")
		}
		if strings.Contains(combined, "승진") || strings.Contains(combined, "이직") {
			analysis.SubTopics = append(analysis.SubTopics, "경력발전")
		}
	case containsAny(combined, familyKeywords):
		analysis.MainTopic = TopicFamily
		if strings.Contains(combined, "자녀") || strings.Contains(combined, "아이") {
			analysis.SubTopics = append(analysis.SubTopics, "자녀문제")
		}
		if strings.Contains(combined, "부모") {
			analysis.SubTopics = append(analysis.SubTopics, "부모님")
		}
		if strings.Contains(combined, "갈등") || strings.Contains(combined, "싸움") {
			analysis.SubTopics = append(analysis.SubTopics, "가족갈등")
		}
	case containsAny(combined, studyKeywords):
		analysis.MainTopic = TopicStudy
		if strings.Contains(combined, "입시") || strings.Contains(combined, "대학") {
			analysis.SubTopics = append(analysis.SubTopics, "진학")
		}
		if strings.Contains(combined, "시험") {
			analysis.SubTopics = append(analysis.SubTopics, "시험")
		}
	case containsAny(combined, marriageKeywords):
		analysis.MainTopic = TopicMarriage
		if strings.Contains(combined, "만남") {
			analysis.SubTopics = append(analysis.SubTopics, "만남")
		}
		if strings.Contains(combined, "준비") {
			analysis.SubTopics = append(analysis.SubTopics, "결혼준비")
		}
	case containsAny(combined, gratitudeKeywords):
		analysis.MainTopic = TopicGratitude
	}

	switch {
	case containsAny(combined, anxietyKeywords):
		analysis.EmotionalContext = EmotionAnxiety
	case containsAny(combined, sadnessKeywords):
		analysis.EmotionalContext = EmotionSadness
	case containsAny(combined, gratitudeKeywords):
		analysis.EmotionalContext = EmotionGratitude
	}

	if containsAny(combined, urgentKeywords) {
		analysis.UrgencyLevel = UrgencyHigh
	}

	if strings.Contains(combined, "돈") || strings.Contains(combined, "경제") || strings.Contains(combined, "재정") {
		analysis.SpecificConcerns = append(analysis.SpecificConcerns, "경제적 어려움")
	}
	if strings.Contains(combined, "관계") || strings.Contains(combined, "소통") {
		analysis.SpecificConcerns = append(analysis.SpecificConcerns, "인간관계")
	}
	if strings.Contains(combined, "미래") || strings.Contains(combined, "앞으로") {
		analysis.SpecificConcerns = append(analysis.SpecificConcerns, "미래에 대한 불안")
	}

	return analysis
}

// PrayerContext turns the analysis into a short prayer framing phrase. The
// literal situation text is never echoed; only the derived abstraction is.
func PrayerContext(situation string, analysis TopicAnalysis) string {
	if strings.TrimSpace(situation) == "" {
		return analysis.MainTopic + "에 관한 마음을 품고 주님께 간절히 기도드립니다"
	}

	var context string
	switch analysis.MainTopic {
	case TopicHealth:
		if analysis.EmotionalContext == EmotionAnxiety {
			context = "몸과 마음의 건강에 대한 염려가 있는 상황에서"
		} else {
			context = "건강에 관한 절실한 마음을 갖고"
		}
	case TopicJob:
		if analysis.UrgencyLevel == UrgencyHigh {
			context = "진로에 대한 간절한 소망과 함께"
		} else {
			context = "앞으로의 일터와 삶의 방향에 대해"
		}
	case TopicFamily:
		if containsString(analysis.SpecificConcerns, "인간관계") {
			context = "가족과의 관계에서 지혜가 필요한 때에"
		} else {
			context = "사랑하는 가족들을 위한 마음으로"
		}
	case TopicStudy:
		if analysis.EmotionalContext == EmotionAnxiety {
			context = "학업에 대한 부담과 걱정을 안고"
		} else {
			context = "배움의 길에서 최선을 다하고자 하는 마음으로"
		}
	case TopicMarriage:
		context = "인생의 동반자에 대한 소망을 품고"
	case TopicGratitude:
		context = "받은 은혜와 축복에 대한 감사한 마음으로"
	default:
		context = "이 마음의 소원을 품고"
	}

	return context + " 주님 앞에 나아옵니다"
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
