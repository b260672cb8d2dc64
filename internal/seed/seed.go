package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"gorm.io/gorm"
)

type seedEntry struct {
	guideKey    string
	sectionKey  string
	description string
	min         float64
	max         *float64
}

func rangeTo(v float64) *float64 { return &v }

// Representative line items for a fresh install. Real catalogs are managed
// out-of-band; the inflation pipeline only ever mutates values, never shape.
var defaultCatalog = []seedEntry{
	{"exterior", "small-home", "Exterior painting, up to 1,500 sq ft", 3200, rangeTo(5200)},
	{"exterior", "medium-home", "Exterior painting, 1,500-2,500 sq ft", 4400, rangeTo(7200)},
	{"exterior", "large-home", "Exterior painting, 2,500-4,000 sq ft", 6800, rangeTo(11000)},
	{"exterior", "trim-only", "Trim and shutter repaint", 1200, rangeTo(2600)},
	{"interior", "single-room", "Single room repaint", 400, rangeTo(1000)},
	{"interior", "whole-home", "Whole home interior, 2,000 sq ft", 4800, rangeTo(8200)},
	{"interior", "ceilings", "Ceiling painting, starting at", 300, nil},
	{"specialty", "cabinets", "Cabinet painting and refinishing", 2400, rangeTo(4800)},
	{"specialty", "deck-stain", "Deck staining and sealing", 900, rangeTo(2200)},
	{"specialty", "fence-stain", "Fence staining, starting at", 1100, nil},
}

// EnsureDefaultCatalog seeds the pricing catalog when it is empty.
func EnsureDefaultCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.PricingEntry{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, item := range defaultCatalog {
			entry := catalogdomain.PricingEntry{
				ID:              node.Generate(),
				GuideKey:        item.guideKey,
				SectionKey:      item.sectionKey,
				Description:     item.description,
				BaseMinValue:    item.min,
				BaseMaxValue:    item.max,
				DisplayMinValue: item.min,
				DisplayMaxValue: item.max,
				Version:         1,
				IsActive:        true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
