package task

import (
	"time"

	"github.com/brunohenrs/northstar/internal/goal"
	"github.com/brunohenrs/northstar/internal/priority"
	util "github.com/brunohenrs/northstar/internal/utils"
)

type Task struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	GoalID        *uint             `gorm:"index" json:"goal_id,omitempty"`
	Goal          *goal.Goal        `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE;" json:"-"`
	Title         string            `gorm:"not null" json:"title"`
	Description   string            `json:"description,omitempty"`
	Status        Status            `gorm:"default:pending" json:"status"`
	Priority      priority.Priority `gorm:"default:medium" json:"priority"`
	EstimatedTime *int              `json:"estimated_time,omitempty"`
	ActualTime    *int              `json:"actual_time,omitempty"`
	DueDate       *util.Date        `gorm:"type:date" json:"due_date,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
