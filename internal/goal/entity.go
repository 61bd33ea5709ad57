package goal

import (
	"time"

	"github.com/brunohenrs/northstar/internal/priority"
	util "github.com/brunohenrs/northstar/internal/utils"
)

type Goal struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Title       string            `gorm:"not null" json:"title"`
	Description string            `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	TargetDate  *util.Date        `gorm:"type:date" json:"target_date,omitempty"`
	Priority    priority.Priority `gorm:"default:medium" json:"priority"`
	Progress    int               `gorm:"default:0" json:"progress"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
