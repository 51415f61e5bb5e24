package models

import "time"

// PrayerCacheModel stores generated prayers keyed by the normalized request hash.
// Reads must filter on expires_at; rows past their TTL count as misses.
type PrayerCacheModel struct {
	Base
	CacheKey    string    `json:"cacheKey"    gorm:"type:char(64);uniqueIndex;not null"`
	Content     string    `json:"content"     gorm:"type:longtext;not null"`
	Title       string    `json:"title"       gorm:"not null"`
	Category    string    `json:"category"`
	GeneratedAt time.Time `json:"generatedAt"`
	ExpiresAt   time.Time `json:"expiresAt"   gorm:"index"`
}

func (PrayerCacheModel) TableName() string { return "prayer_cache" }

// PrayerFeedbackModel is a user rating of a generated prayer.
type PrayerFeedbackModel struct {
	Base
	PrayerID     string   `json:"prayerId"     gorm:"index;not null"`
	Rating       int      `json:"rating"       gorm:"not null"`
	FeedbackText string   `json:"feedbackText" gorm:"type:text"`
	Improvements []string `json:"improvements" gorm:"type:longtext;serializer:json"`
}

func (PrayerFeedbackModel) TableName() string { return "prayer_feedback" }

// PrayerLearningModel holds effectiveness-weighted style patterns derived
// from feedback. pattern_type is "positive_pattern" or "avoid_pattern".
type PrayerLearningModel struct {
	Base
	PatternText        string  `json:"patternText"        gorm:"uniqueIndex:idx_pattern,length:191;not null"`
	PatternType        string  `json:"patternType"        gorm:"not null"`
	EffectivenessScore float64 `json:"effectivenessScore" gorm:"index"`
}

func (PrayerLearningModel) TableName() string { return "prayer_learning_data" }

// PrayerGenerationModel records request metadata per generated prayer,
// written best-effort for usage analysis.
type PrayerGenerationModel struct {
	Base
	PrayerID      string `json:"prayerId" gorm:"index"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Situation     string `json:"situation" gorm:"type:text"`
	Tone          string `json:"tone"`
	Length        string `json:"length"`
	ContentLength int    `json:"contentLength"`
	Source        string `json:"source"`
}

func (PrayerGenerationModel) TableName() string { return "prayer_generations" }
