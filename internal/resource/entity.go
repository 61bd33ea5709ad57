// Package resource declares the Resource entity. Resources live in the
// schema for the cascade chain (goal → task → resource) but have no API
// surface yet.
package resource

import (
	"time"

	"github.com/brunohenrs/northstar/internal/task"
)

type Resource struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TaskID      uint       `gorm:"index;not null" json:"task_id"`
	Task        *task.Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE;" json:"-"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
