package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/internal/infrastructure/models"
	"care-connect.backend/pkg/utils"
)

// AuditLogRepository implements append-only audit log persistence
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit event
func (r *AuditLogRepository) Create(ctx context.Context, log *entities.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = utils.GenerateUUIDv7()
	}

	m := &models.AuditLog{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    string(log.Action),
		IPAddress: log.IPAddress.Ptr(),
		UserAgent: log.UserAgent.Ptr(),
		CreatedAt: log.CreatedAt,
	}
	if log.Metadata != nil {
		b, err := json.Marshal(log.Metadata)
		if err != nil {
			return err
		}
		m.Metadata = datatypes.JSON(b)
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.ID = m.ID
	return nil
}

// List lists audit events newest first with filters and pagination
func (r *AuditLogRepository) List(ctx context.Context, filter entities.AuditLogFilter, limit, offset int) ([]*entities.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.AuditLog
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*entities.AuditLog, 0, len(ms))
	for i := range ms {
		logs = append(logs, auditLogToEntity(&ms[i]))
	}
	return logs, total, nil
}

func auditLogToEntity(m *models.AuditLog) *entities.AuditLog {
	e := &entities.AuditLog{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    entities.AuditAction(m.Action),
		IPAddress: null.StringFromPtr(m.IPAddress),
		UserAgent: null.StringFromPtr(m.UserAgent),
		CreatedAt: m.CreatedAt,
	}
	if len(m.Metadata) > 0 {
		var meta map[string]interface{}
		if err := json.Unmarshal(m.Metadata, &meta); err == nil {
			e.Metadata = meta
		}
	}
	return e
}
