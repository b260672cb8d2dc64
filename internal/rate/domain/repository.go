package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindByYear(ctx context.Context, db *gorm.DB, year int) (*InflationRate, error)
	Insert(ctx context.Context, db *gorm.DB, rate *InflationRate) error
	MarkApplied(ctx context.Context, db *gorm.DB, year int, appliedAt time.Time) error
	List(ctx context.Context, db *gorm.DB) ([]InflationRate, error)
}
