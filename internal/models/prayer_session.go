package models

import "time"

const (
	SessionStatusActive = "active"
	SessionStatusEnded  = "ended"
)

// PrayerSessionModel tracks a "praying right now" presence row. Clients
// heartbeat every 30 seconds; sessions without a recent heartbeat are
// closed by a cron job.
type PrayerSessionModel struct {
	Base
	SessionID       string     `json:"sessionId"       gorm:"uniqueIndex;not null"`
	PrayerTitle     string     `json:"prayerTitle"`
	Status          string     `json:"status"          gorm:"index;default:active"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt"`
	LastHeartbeatAt time.Time  `json:"lastHeartbeatAt" gorm:"index"`
}

func (PrayerSessionModel) TableName() string { return "prayer_sessions" }
