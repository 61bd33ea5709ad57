package goal

import (
	"github.com/brunohenrs/northstar/internal/priority"
	util "github.com/brunohenrs/northstar/internal/utils"
)

type CreateGoalDTO struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    *string           `json:"category"`
	TargetDate  *util.Date        `json:"target_date"`
	Priority    priority.Priority `json:"priority"`
}

type CreateGoalResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
