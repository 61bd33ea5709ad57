package task

import (
	"github.com/brunohenrs/northstar/internal/priority"
	util "github.com/brunohenrs/northstar/internal/utils"
)

type CreateTaskDTO struct {
	GoalID        *uint             `json:"goal_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        Status            `json:"status"`
	Priority      priority.Priority `json:"priority"`
	EstimatedTime *int              `json:"estimated_time"`
	DueDate       *util.Date        `json:"due_date"`
}

type CreateTaskResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// Filter narrows the task listing; both fields are optional and combine
// with AND when both are given.
type Filter struct {
	GoalID *uint
	Status *Status
}
