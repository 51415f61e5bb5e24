package prayer

import (
	"fmt"
	"math/rand/v2"
)

// RenderFallback builds a prayer from the topic template catalog without any
// LLM involvement. Slot picks come from the injected RNG so tests can seed
// deterministic output. It always produces non-empty text; the general
// template covers requests no topic matched.
func RenderFallback(req GenerateRequest, rng *rand.Rand) string {
	analysis := Analyze(req.Title, req.Situation)
	template := TemplateFor(analysis)
	context := PrayerContext(req.Situation, analysis)

	opening := toneOpenings[req.Tone]
	closing := toneClosings[req.Tone]
	if opening == "" {
		opening = toneOpenings[ToneWarm]
		closing = toneClosings[ToneWarm]
	}

	specificPrayer := pick(rng, template.SpecificPrayers)
	blessing := pick(rng, template.Blessings)
	concern := pick(rng, template.Concerns)

	var emotionalExpression string
	switch analysis.EmotionalContext {
	case EmotionAnxiety:
		emotionalExpression = "마음의 염려와 불안을 잠재우시고"
	case EmotionSadness:
		emotionalExpression = "이 어려운 시간을 견딜 수 있는 힘을 주시고"
	case EmotionGratitude:
		emotionalExpression = "더욱 감사하는 마음으로 살아갈 수 있게 하시고"
	default:
		emotionalExpression = "평안한 마음으로 주님을 신뢰할 수 있게 하시고"
	}

	if req.Length == LengthLong {
		additionalPrayer := pick(rng, without(template.SpecificPrayers, specificPrayer))
		additionalBlessing := pick(rng, without(template.Blessings, blessing))

		return fmt.Sprintf(`%s %s

주님께서는 우리의 모든 필요를 아시고, 때를 따라 돕는 은혜를 주시는 분이심을 고백합니다. 이 간절한 마음을 주님께서 받아주시기를 원합니다.

%s 또한 %s

때로는 %s이 있어서 마음이 무거울 때가 있습니다. %s 주님께서는 우리의 길을 인도하시고 올바른 방향으로 이끄시는 분이심을 믿습니다.

주님의 지혜와 명철이 필요한 이 시간입니다. 우리의 생각과 계획이 주님의 뜻과 다를 수 있음을 인정하며, 주님의 완전하신 계획에 순복하는 마음을 주시옵소서.

%s을 허락하시고, %s도 함께 누릴 수 있게 하여 주시옵소서.

어떤 결과가 주어지든지 그 모든 것이 합력하여 선을 이루시는 주님의 손길임을 믿습니다. 감사하는 마음과 찬양하는 영으로 이 시간들을 보낼 수 있게 하여 주시옵소서.

주변의 사랑하는 사람들과도 이 은혜를 함께 나누며, 서로 격려하고 기도할 수 있는 복된 공동체가 되게 하여 주시옵소서.

무엇보다 이 모든 과정을 통해 주님을 더욱 깊이 알아가고, 주님과의 관계가 더욱 친밀해지는 귀한 시간이 되기를 소망합니다. %s`,
			opening, context, specificPrayer, additionalPrayer, concern,
			emotionalExpression, blessing, additionalBlessing, closing)
	}

	return fmt.Sprintf(`%s %s

주님께서 이 마음을 깊이 아시고 계심을 믿습니다. %s

%s이 있지만, %s 주님께서 모든 것을 아시고 가장 좋은 길로 인도해 주실 것을 믿습니다.

%s을 허락하시고, 이 모든 과정을 통해 주님을 더욱 신뢰하게 하시옵소서. %s`,
		opening, context, specificPrayer, concern, emotionalExpression, blessing, closing)
}

func pick(rng *rand.Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.IntN(len(items))]
}

func without(items []string, exclude string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != exclude {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return items
	}
	return out
}
