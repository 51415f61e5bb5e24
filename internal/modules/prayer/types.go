package prayer

import (
	"fmt"
	"strings"
)

const (
	ToneFormal = "formal"
	ToneCasual = "casual"
	ToneWarm   = "warm"

	LengthShort = "short"
	LengthLong  = "long"
)

// GenerateRequest is the prayer generation input.
type GenerateRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Situation string `json:"situation"`
	Tone      string `json:"tone"`
	Length    string `json:"length"`
}

// Validate checks field constraints and fills defaults for tone and length.
func (r *GenerateRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return fmt.Errorf("title: 기도 제목을 입력해주세요")
	}
	if len([]rune(title)) > 100 {
		return fmt.Errorf("title: 제목은 100자 이하여야 합니다")
	}
	if len([]rune(r.Situation)) > 500 {
		return fmt.Errorf("situation: 상황 설명은 500자 이하여야 합니다")
	}

	switch r.Tone {
	case "":
		r.Tone = ToneWarm
	case ToneFormal, ToneCasual, ToneWarm:
	default:
		return fmt.Errorf("tone: formal, casual, warm 중 하나여야 합니다")
	}

	switch r.Length {
	case "":
		r.Length = LengthShort
	case LengthShort, LengthLong:
	default:
		return fmt.Errorf("length: short 또는 long 이어야 합니다")
	}

	return nil
}

// GeneratedPrayer is the generation result returned to clients.
type GeneratedPrayer struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	GeneratedAt string `json:"generatedAt"`
	Cached      bool   `json:"cached"`
}

// TopicAnalysis is the keyword-derived classification of a request.
type TopicAnalysis struct {
	MainTopic        string   `json:"mainTopic"`
	SubTopics        []string `json:"subTopics"`
	EmotionalContext string   `json:"emotionalContext"`
	UrgencyLevel     string   `json:"urgencyLevel"`
	SpecificConcerns []string `json:"specificConcerns"`
}

// Template is a topic-specific prayer scaffold.
type Template struct {
	Category        string
	SpecificPrayers []string
	Blessings       []string
	Concerns        []string
}

// Feedback is a user rating of a generated prayer.
type Feedback struct {
	PrayerID     string   `json:"prayerId"`
	Rating       int      `json:"rating"`
	Feedback     string   `json:"feedback"`
	Improvements []string `json:"improvements"`
}

// Validate checks the feedback payload.
func (f *Feedback) Validate() error {
	if strings.TrimSpace(f.PrayerID) == "" {
		return fmt.Errorf("prayerId: 필수 정보가 누락되었습니다")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return fmt.Errorf("rating: 평점은 1에서 5 사이여야 합니다")
	}
	return nil
}

// LearningData holds the pattern lists injected into prompts.
type LearningData struct {
	PositivePatterns []string
	AvoidPatterns    []string
}
