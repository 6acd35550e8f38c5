package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "marquee/contexts/conversion/funnel-gateway/domain/errors"
	"marquee/contexts/conversion/funnel-gateway/ports"
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

func (r *Repository) CreateEntry(
	ctx context.Context,
	entryID string,
	email string,
	variantSeen string,
	now time.Time,
) (ports.WaitlistEntry, error) {
	row := waitlistEntryModel{
		EntryID:     entryID,
		Email:       email,
		VariantSeen: variantSeen,
		CreatedAt:   now.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.WaitlistEntry{}, domainerrors.ErrDuplicateEmail
		}
		return ports.WaitlistEntry{}, err
	}
	return row.toEntry(), nil
}

type waitlistEntryModel struct {
	EntryID     string    `gorm:"column:entry_id;primaryKey"`
	Email       string    `gorm:"column:email;uniqueIndex"`
	VariantSeen string    `gorm:"column:variant_seen"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (waitlistEntryModel) TableName() string {
	return "waitlist"
}

func (m waitlistEntryModel) toEntry() ports.WaitlistEntry {
	return ports.WaitlistEntry{
		EntryID:     m.EntryID,
		Email:       m.Email,
		VariantSeen: m.VariantSeen,
		CreatedAt:   m.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
