package repository

import (
	"context"

	auditdomain "github.com/hillcosite/priceguide/internal/audit/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() auditdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *auditdomain.AutomationLog) error {
	if entry == nil {
		return nil
	}
	return db.WithContext(ctx).Exec(
		`INSERT INTO automation_logs (id, log_type, operation, message, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.LogType,
		entry.Operation,
		entry.Message,
		entry.Metadata,
		entry.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, limit int) ([]auditdomain.AutomationLog, error) {
	var logs []auditdomain.AutomationLog
	stmt := db.WithContext(ctx).Model(&auditdomain.AutomationLog{}).
		Order("created_at desc, id desc")
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if err := stmt.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
