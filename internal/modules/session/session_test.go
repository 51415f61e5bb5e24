package session

import (
	"context"
	"testing"
	"time"

	"github.com/prayful/core/internal/database"
	"github.com/prayful/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return NewService(db, zap.NewNop())
}

func TestStart_CreatesAndReactivates(t *testing.T) {
	svc := newTestService(t)

	row, err := svc.Start("sess-1", "아침 기도")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusActive, row.Status)

	require.NoError(t, svc.End("sess-1"))

	row, err = svc.Start("sess-1", "저녁 기도")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusActive, row.Status)
	assert.Equal(t, "저녁 기도", row.PrayerTitle)

	var count int64
	require.NoError(t, svc.db.Model(&models.PrayerSessionModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStart_RequiresSessionID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Start("  ", "")
	assert.Error(t, err)
}

func TestHeartbeat(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Start("sess-1", "")
	require.NoError(t, err)

	later := time.Now().Add(30 * time.Second)
	svc.now = func() time.Time { return later }
	require.NoError(t, svc.Heartbeat("sess-1"))

	assert.ErrorIs(t, svc.Heartbeat("sess-unknown"), gorm.ErrRecordNotFound)

	require.NoError(t, svc.End("sess-1"))
	assert.ErrorIs(t, svc.Heartbeat("sess-1"), gorm.ErrRecordNotFound)
}

func TestActiveCount_IgnoresStaleAndEnded(t *testing.T) {
	svc := newTestService(t)

	base := time.Now()
	svc.now = func() time.Time { return base }

	_, err := svc.Start("fresh", "")
	require.NoError(t, err)
	_, err = svc.Start("stale", "")
	require.NoError(t, err)
	_, err = svc.Start("ended", "")
	require.NoError(t, err)
	require.NoError(t, svc.End("ended"))

	// age the stale session past the liveness window
	require.NoError(t, svc.db.Model(&models.PrayerSessionModel{}).
		Where("session_id = ?", "stale").
		Update("last_heartbeat_at", base.Add(-livenessWindow-time.Minute)).Error)

	count, err := svc.ActiveCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReapStale(t *testing.T) {
	svc := newTestService(t)

	base := time.Now()
	svc.now = func() time.Time { return base }

	_, err := svc.Start("fresh", "")
	require.NoError(t, err)
	_, err = svc.Start("stale", "")
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(&models.PrayerSessionModel{}).
		Where("session_id = ?", "stale").
		Update("last_heartbeat_at", base.Add(-livenessWindow-time.Minute)).Error)

	require.NoError(t, svc.ReapStale(context.Background()))

	var stale models.PrayerSessionModel
	require.NoError(t, svc.db.Where("session_id = ?", "stale").First(&stale).Error)
	assert.Equal(t, models.SessionStatusEnded, stale.Status)
	assert.NotNil(t, stale.EndedAt)

	var fresh models.PrayerSessionModel
	require.NoError(t, svc.db.Where("session_id = ?", "fresh").First(&fresh).Error)
	assert.Equal(t, models.SessionStatusActive, fresh.Status)
}
