package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prayful/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// livenessWindow is how long a session counts as active after its last
// heartbeat. Clients heartbeat every 30 seconds.
const livenessWindow = 2 * time.Minute

// Service manages "praying right now" presence sessions.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Start opens a session for the given client session ID. Re-starting an
// existing session reactivates it.
func (s *Service) Start(sessionID, prayerTitle string) (*models.PrayerSessionModel, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errors.New("sessionId is required")
	}
	if prayerTitle == "" {
		prayerTitle = "함께하는 기도시간"
	}

	now := s.now()
	row := models.PrayerSessionModel{SessionID: sessionID}
	// map assign so a re-start clears ended_at
	assign := map[string]interface{}{
		"prayer_title":      prayerTitle,
		"status":            models.SessionStatusActive,
		"started_at":        now,
		"ended_at":          nil,
		"last_heartbeat_at": now,
	}
	if err := s.db.Where("session_id = ?", sessionID).Assign(assign).FirstOrCreate(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Heartbeat bumps the liveness timestamp of an active session.
func (s *Service) Heartbeat(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("sessionId is required")
	}

	result := s.db.Model(&models.PrayerSessionModel{}).
		Where("session_id = ? AND status = ?", sessionID, models.SessionStatusActive).
		Update("last_heartbeat_at", s.now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// End marks a session as ended.
func (s *Service) End(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("sessionId is required")
	}

	now := s.now()
	return s.db.Model(&models.PrayerSessionModel{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":   models.SessionStatusEnded,
			"ended_at": now,
		}).Error
}

// ActiveCount returns how many sessions are active with a recent heartbeat.
func (s *Service) ActiveCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.PrayerSessionModel{}).
		Where("status = ?", models.SessionStatusActive).
		Where("last_heartbeat_at > ?", s.now().Add(-livenessWindow)).
		Count(&count).Error
	return count, err
}

// ReapStale closes active sessions whose heartbeat went silent. Wired as a
// cron job.
func (s *Service) ReapStale(ctx context.Context) error {
	now := s.now()
	result := s.db.WithContext(ctx).Model(&models.PrayerSessionModel{}).
		Where("status = ?", models.SessionStatusActive).
		Where("last_heartbeat_at <= ?", now.Add(-livenessWindow)).
		Updates(map[string]interface{}{
			"status":   models.SessionStatusEnded,
			"ended_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Info("closed stale prayer sessions", zap.Int64("count", result.RowsAffected))
	}
	return nil
}
