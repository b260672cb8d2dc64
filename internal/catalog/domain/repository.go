package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListActive(ctx context.Context, db *gorm.DB) ([]PricingEntry, error)
	ApplyUpdate(ctx context.Context, db *gorm.DB, update EntryUpdate) error
}
