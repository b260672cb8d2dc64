package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PricingEntry is one line item in the pricing catalog, e.g. "exterior
// painting, 2,200 sq ft home". Base values compound year over year and are
// never rounded; display values are the rounded figures the guide renders.
// DisplayMaxValue is present iff BaseMaxValue is present: whether an entry is
// a range or a "starting at" single value is fixed at creation.
type PricingEntry struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey"`
	GuideKey         string       `json:"guide_key" gorm:"column:guide_key;type:text;not null;index"`
	SectionKey       string       `json:"section_key" gorm:"column:section_key;type:text;not null"`
	Description      string       `json:"description" gorm:"type:text"`
	BaseMinValue     float64      `json:"base_min_value" gorm:"not null"`
	BaseMaxValue     *float64     `json:"base_max_value,omitempty"`
	DisplayMinValue  float64      `json:"display_min_value" gorm:"not null"`
	DisplayMaxValue  *float64     `json:"display_max_value,omitempty"`
	LastInflatedYear int          `json:"last_inflated_year" gorm:"not null;default:0"`
	Version          int32        `json:"version" gorm:"not null;default:1"`
	IsActive         bool         `json:"is_active" gorm:"not null;default:true"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PricingEntry) TableName() string { return "pricing_entries" }

// Name is the label used in audit and notification output.
func (e PricingEntry) Name() string {
	if e.Description != "" {
		return e.Description
	}
	return e.SectionKey
}

// EntryUpdate carries the fields a live inflation run writes back for one
// entry. Version is bumped in the store, not here.
type EntryUpdate struct {
	ID              snowflake.ID
	BaseMinValue    float64
	BaseMaxValue    *float64
	DisplayMinValue float64
	DisplayMaxValue *float64
	InflatedYear    int
	UpdatedAt       time.Time
}
