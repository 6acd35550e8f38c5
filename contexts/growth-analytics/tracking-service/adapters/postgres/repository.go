package postgresadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"marquee/contexts/growth-analytics/tracking-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Insert(ctx context.Context, event ports.TrackedEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return err
	}
	row := analyticsEventModel{
		EventID:   event.EventID,
		EventName: string(event.EventName),
		Variant:   event.Variant,
		SessionID: event.SessionID,
		Metadata:  metadata,
		CreatedAt: event.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

type analyticsEventModel struct {
	EventID   string    `gorm:"column:event_id;primaryKey"`
	EventName string    `gorm:"column:event_name"`
	Variant   string    `gorm:"column:variant"`
	SessionID string    `gorm:"column:session_id"`
	Metadata  []byte    `gorm:"column:metadata;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (analyticsEventModel) TableName() string {
	return "analytics_events"
}
