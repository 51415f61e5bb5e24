package prayer

import (
	"fmt"
	"strings"
)

const generationSystemPrompt = `당신은 경험 많은 기독교 목회자입니다. 성도들의 마음에 깊이 와닿는 자연스럽고 따뜻한 기도문을 작성합니다.`

var lengthGuides = map[string]string{
	LengthShort: "6-8문장의 간결하면서도 충분한",
	LengthLong:  "15-20문장의 깊이 있고 상세한",
}

var toneGuides = map[string]string{
	ToneFormal: "정중하고 경건한 어조로, 격식을 갖춘",
	ToneCasual: "친근하고 편안한 어조로, 일상적인 언어를 사용한",
	ToneWarm:   "따뜻하고 위로가 되는 어조로, 부드럽고 포근한",
}

// BuildPrompt composes the generation prompt from the analyzed request and
// the learned patterns. The raw situation text is never inserted; only the
// derived prayer context and analysis fields are.
func BuildPrompt(req GenerateRequest, analysis TopicAnalysis, learning LearningData) string {
	context := PrayerContext(req.Situation, analysis)

	var b strings.Builder
	b.WriteString(`당신은 20년 경력의 기독교 목회자로서, 개인의 마음에 깊이 와닿는 기도문을 작성하는 전문가입니다.

기도문 작성 요청:
`)
	fmt.Fprintf(&b, "- 주제: %s\n", strings.TrimSpace(req.Title))
	fmt.Fprintf(&b, "- 배경: %s\n", context)
	if req.Category != "" {
		fmt.Fprintf(&b, "- 카테고리: %s\n", req.Category)
	}
	fmt.Fprintf(&b, "- 분석된 주제: %s\n", analysis.MainTopic)
	fmt.Fprintf(&b, "- 감정적 상태: %s\n", analysis.EmotionalContext)
	if len(analysis.SubTopics) > 0 {
		fmt.Fprintf(&b, "- 세부 관심사: %s\n", strings.Join(analysis.SubTopics, ", "))
	}

	b.WriteString(`
중요한 작성 원칙:
1. 사용자의 입력 내용을 그대로 반복하지 말고, 다른 표현과 문장으로 자연스럽게 풀어서 작성
2. 분석된 주제와 감정 상태에 맞는 구체적이고 적절한 기도 내용 작성
3. 실제 목회자가 성도와 함께 기도하는 듯한 자연스러운 흐름
4. 개인적이고 구체적인 언어 사용 (추상적이지 않게)
5. 감정적 공감과 영적 위로가 담긴 표현
6. 성경적 근거가 자연스럽게 녹아든 내용
7. 상황 설명을 그대로 인용하지 말고 기도문에 어울리는 표현으로 재해석
`)

	fmt.Fprintf(&b, "8. %s 기도문으로 작성\n", lengthGuides[req.Length])
	fmt.Fprintf(&b, "9. %s 표현 사용\n", toneGuides[req.Tone])
	b.WriteString(`10. "하나님 아버지" 또는 "사랑하는 주님"으로 자연스럽게 시작
11. "예수님의 이름으로 기도드립니다. 아멘"으로 마무리

기도문 구조 (기승전결):
- 기(起): 하나님께 나아가는 마음, 현재 상황 인정
- 승(承): 구체적인 고민이나 감정 표현, 하나님과의 관계 확인
- 전(轉): 하나님의 은혜와 도움을 구하는 간구
- 결(結): 감사와 믿음의 고백, 결단
`)

	if len(learning.PositivePatterns) > 0 {
		b.WriteString("\n과거 좋은 평가를 받은 패턴들:\n")
		for _, pattern := range firstN(learning.PositivePatterns, 3) {
			fmt.Fprintf(&b, "- %s\n", pattern)
		}
	}
	if len(learning.AvoidPatterns) > 0 {
		b.WriteString("\n피해야 할 패턴들:\n")
		for _, pattern := range firstN(learning.AvoidPatterns, 3) {
			fmt.Fprintf(&b, "- %s\n", pattern)
		}
	}

	b.WriteString("\n기도문만 작성하고 다른 설명은 포함하지 마세요.")
	return b.String()
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
