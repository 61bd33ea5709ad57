// Package focussession declares the FocusSession entity, schema-only for
// now: sessions cascade away with their task but no handler records them.
package focussession

import (
	"time"

	"github.com/brunohenrs/northstar/internal/task"
)

type FocusSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TaskID       uint       `gorm:"index;not null" json:"task_id"`
	Task         *task.Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE;" json:"-"`
	Duration     int        `json:"duration"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Distractions int        `gorm:"default:0" json:"distractions"`
	CreatedAt    time.Time  `json:"created_at"`
}
