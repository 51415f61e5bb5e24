package prayer

import (
	"github.com/prayful/core/internal/models"
	"go.uber.org/zap"
)

const (
	patternTypePositive = "positive_pattern"
	patternTypeAvoid    = "avoid_pattern"

	learningQueryLimit     = 20
	positiveScoreThreshold = 0.6
	avoidScoreThreshold    = 0.3
)

// SaveFeedback persists a feedback row and folds its extracted patterns into
// the learning table. Storage errors are logged, never surfaced.
func (s *Service) SaveFeedback(fb Feedback) error {
	improvements := fb.Improvements
	if improvements == nil {
		improvements = []string{}
	}

	row := models.PrayerFeedbackModel{
		PrayerID:     fb.PrayerID,
		Rating:       fb.Rating,
		FeedbackText: fb.Feedback,
		Improvements: improvements,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}

	s.updateLearningData(fb)
	return nil
}

func (s *Service) updateLearningData(fb Feedback) {
	for _, pattern := range extractPatterns(fb) {
		m := models.PrayerLearningModel{
			PatternText:        pattern.text,
			PatternType:        pattern.kind,
			EffectivenessScore: pattern.score,
		}
		if err := s.db.Where("pattern_text = ?", pattern.text).Assign(m).FirstOrCreate(&m).Error; err != nil {
			s.logger.Warn("learning pattern upsert failed",
				zap.String("pattern", pattern.text), zap.Error(err))
		}
	}
}

type extractedPattern struct {
	text  string
	kind  string
	score float64
}

// extractPatterns maps a rating to pattern rows: each improvement tag
// becomes an avoid pattern weighted inversely to the rating, and a rating of
// 4 or more reinforces the natural-expression positive pattern.
func extractPatterns(fb Feedback) []extractedPattern {
	effectiveness := float64(fb.Rating) / 5.0

	patterns := make([]extractedPattern, 0, len(fb.Improvements)+1)
	for _, improvement := range fb.Improvements {
		if improvement == "" {
			continue
		}
		patterns = append(patterns, extractedPattern{
			text:  improvement,
			kind:  patternTypeAvoid,
			score: 1 - effectiveness,
		})
	}

	if fb.Rating >= 4 {
		patterns = append(patterns, extractedPattern{
			text:  "자연스럽고 감동적인 표현 사용",
			kind:  patternTypePositive,
			score: effectiveness,
		})
	}

	return patterns
}

// LearningData returns the highest-scored patterns split into positive and
// avoid lists. The score of an avoid pattern measures avoidance strength, so
// each type gets its own gate: positives above 0.6, avoids above 0.3. Query
// failures degrade to empty lists so generation never blocks on the learning
// store.
func (s *Service) LearningData() LearningData {
	var rows []models.PrayerLearningModel
	err := s.db.
		Where("effectiveness_score >= ?", 0).
		Order("effectiveness_score DESC").
		Limit(learningQueryLimit).
		Find(&rows).Error
	if err != nil {
		s.logger.Warn("learning data query failed", zap.Error(err))
		return LearningData{PositivePatterns: []string{}, AvoidPatterns: []string{}}
	}

	data := LearningData{PositivePatterns: []string{}, AvoidPatterns: []string{}}
	for _, row := range rows {
		switch {
		case row.PatternType == patternTypePositive && row.EffectivenessScore > positiveScoreThreshold:
			data.PositivePatterns = append(data.PositivePatterns, row.PatternText)
		case row.PatternType == patternTypeAvoid && row.EffectivenessScore > avoidScoreThreshold:
			data.AvoidPatterns = append(data.AvoidPatterns, row.PatternText)
		}
	}
	return data
}
