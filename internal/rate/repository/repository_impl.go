package repository

import (
	"context"
	"time"

	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ratedomain.Repository {
	return &repo{}
}

func (r *repo) FindByYear(ctx context.Context, db *gorm.DB, year int) (*ratedomain.InflationRate, error) {
	var rate ratedomain.InflationRate
	err := db.WithContext(ctx).Raw(
		`SELECT id, year, cpi_rate, data_source, is_applied, applied_at, created_at
		 FROM inflation_rates WHERE year = ?`,
		year,
	).Scan(&rate).Error
	if err != nil {
		return nil, err
	}
	if rate.ID == 0 {
		return nil, nil
	}
	return &rate, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rate *ratedomain.InflationRate) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO inflation_rates (id, year, cpi_rate, data_source, is_applied, applied_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rate.ID,
		rate.Year,
		rate.CPIRate,
		rate.DataSource,
		rate.IsApplied,
		rate.AppliedAt,
		rate.CreatedAt,
	).Error
}

func (r *repo) MarkApplied(ctx context.Context, db *gorm.DB, year int, appliedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE inflation_rates SET is_applied = ?, applied_at = ? WHERE year = ?`,
		true,
		appliedAt,
		year,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]ratedomain.InflationRate, error) {
	var items []ratedomain.InflationRate
	err := db.WithContext(ctx).Raw(
		`SELECT id, year, cpi_rate, data_source, is_applied, applied_at, created_at
		 FROM inflation_rates ORDER BY year DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
