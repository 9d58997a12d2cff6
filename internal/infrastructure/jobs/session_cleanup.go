package jobs

import (
	"context"
	"log"
	"time"

	"care-connect.backend/internal/domain/repositories"
)

// SessionCleanupJob removes expired session rows in batches
type SessionCleanupJob struct {
	sessions  repositories.SessionRepository
	interval  time.Duration
	batchSize int
	stop      chan struct{}
}

func NewSessionCleanupJob(sessions repositories.SessionRepository) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions:  sessions,
		interval:  15 * time.Minute,
		batchSize: 500,
		stop:      make(chan struct{}),
	}
}

func (j *SessionCleanupJob) Start(ctx context.Context) {
	log.Println("🕐 Starting session cleanup job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Session cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Session cleanup job stopped")
			return
		case <-ticker.C:
			j.cleanupExpiredSessions(ctx)
		}
	}
}

func (j *SessionCleanupJob) Stop() {
	close(j.stop)
}

func (j *SessionCleanupJob) cleanupExpiredSessions(ctx context.Context) {
	removed, err := j.sessions.DeleteExpired(ctx, j.batchSize)
	if err != nil {
		log.Printf("❌ Error deleting expired sessions: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("✅ Removed %d expired sessions", removed)
	}
}
