package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type LogType string

const (
	LogTypeInfo    LogType = "info"
	LogTypeSuccess LogType = "success"
	LogTypeError   LogType = "error"
)

// AutomationLog is one append-only audit record for a pipeline phase. Rows
// are never mutated or deleted.
type AutomationLog struct {
	ID        snowflake.ID      `json:"id" gorm:"primaryKey"`
	LogType   LogType           `json:"log_type" gorm:"column:log_type;type:text;not null"`
	Operation string            `json:"operation" gorm:"type:text;not null;index"`
	Message   string            `json:"message" gorm:"type:text"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (AutomationLog) TableName() string { return "automation_logs" }
