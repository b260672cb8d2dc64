package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// InflationRate is one CPI rate record per calendar year. A persisted row is
// authoritative for its year: re-runs reuse it instead of fetching a possibly
// different live value. IsApplied flips false→true exactly once, by a live
// pipeline run, after every entry has been committed.
type InflationRate struct {
	ID         snowflake.ID `json:"id" gorm:"primaryKey"`
	Year       int          `json:"year" gorm:"uniqueIndex;not null"`
	CPIRate    float64      `json:"cpi_rate" gorm:"column:cpi_rate;not null"`
	DataSource string       `json:"data_source" gorm:"type:text"`
	IsApplied  bool         `json:"is_applied" gorm:"not null;default:false"`
	AppliedAt  *time.Time   `json:"applied_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (InflationRate) TableName() string { return "inflation_rates" }

// Resolved is the outcome of rate resolution: the rate to apply and a
// provenance label for audit output.
type Resolved struct {
	Rate   float64 `json:"cpi_rate"`
	Source string  `json:"source"`
}
