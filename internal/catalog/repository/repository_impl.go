package repository

import (
	"context"

	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() catalogdomain.Repository {
	return &repo{}
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB) ([]catalogdomain.PricingEntry, error) {
	var items []catalogdomain.PricingEntry
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("guide_key ASC, section_key ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ApplyUpdate(ctx context.Context, db *gorm.DB, update catalogdomain.EntryUpdate) error {
	res := db.WithContext(ctx).Exec(
		`UPDATE pricing_entries SET
			base_min_value = ?,
			base_max_value = ?,
			display_min_value = ?,
			display_max_value = ?,
			last_inflated_year = ?,
			version = version + 1,
			updated_at = ?
		WHERE id = ?`,
		update.BaseMinValue,
		update.BaseMaxValue,
		update.DisplayMinValue,
		update.DisplayMaxValue,
		update.InflatedYear,
		update.UpdatedAt,
		update.ID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalogdomain.ErrNotFound
	}
	return nil
}
