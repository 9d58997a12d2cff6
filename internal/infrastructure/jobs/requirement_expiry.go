package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/internal/domain/repositories"
	"care-connect.backend/pkg/utils"
)

// RequirementExpiryJob flips approved compliance documents to EXPIRED once
// their expiry date passes and records an audit event per document.
type RequirementExpiryJob struct {
	requirements repositories.VerificationRequirementRepository
	auditLogs    repositories.AuditLogRepository
	interval     time.Duration
	batchSize    int
	stop         chan struct{}
}

func NewRequirementExpiryJob(requirements repositories.VerificationRequirementRepository, auditLogs repositories.AuditLogRepository) *RequirementExpiryJob {
	return &RequirementExpiryJob{
		requirements: requirements,
		auditLogs:    auditLogs,
		interval:     time.Hour,
		batchSize:    100,
		stop:         make(chan struct{}),
	}
}

func (j *RequirementExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting requirement expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Requirement expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Requirement expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredRequirements(ctx)
		}
	}
}

func (j *RequirementExpiryJob) Stop() {
	close(j.stop)
}

func (j *RequirementExpiryJob) processExpiredRequirements(ctx context.Context) {
	expired, err := j.requirements.ListExpiredApproved(ctx, time.Now(), j.batchSize)
	if err != nil {
		log.Printf("❌ Error fetching expired requirements: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	log.Printf("🔄 Processing %d expired requirements...", len(expired))

	var ids []uuid.UUID
	for _, req := range expired {
		ids = append(ids, req.ID)
	}

	if err := j.requirements.MarkExpired(ctx, ids); err != nil {
		log.Printf("❌ Error expiring requirements: %v", err)
		return
	}

	for _, req := range expired {
		event := &entities.AuditLog{
			ID:     utils.GenerateUUIDv7(),
			Action: entities.AuditRequirementExpired,
			Metadata: map[string]interface{}{
				"requirementId":   req.ID.String(),
				"workerProfileId": req.WorkerProfileID.String(),
				"type":            req.Type,
			},
			CreatedAt: time.Now(),
		}
		if err := j.auditLogs.Create(ctx, event); err != nil {
			log.Printf("❌ Error writing expiry audit event: %v", err)
		}
	}

	log.Printf("✅ Expired %d requirements", len(expired))
}
