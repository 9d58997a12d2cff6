package repositories

import (
	"context"

	"care-connect.backend/internal/domain/entities"
)

// AuditLogRepository defines append-only audit log operations.
// There is deliberately no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entities.AuditLog) error
	List(ctx context.Context, filter entities.AuditLogFilter, limit, offset int) ([]*entities.AuditLog, int64, error)
}
