package focus

import (
	"context"
	"fmt"
	"time"

	"github.com/brunohenrs/northstar/internal/priority"
	"github.com/brunohenrs/northstar/internal/storage"
	"github.com/brunohenrs/northstar/internal/task"
	util "github.com/brunohenrs/northstar/internal/utils"
)

// NextTask is a pending task joined with its owning goal's title and
// priority. Tasks without a goal carry nil goal fields and rank lowest.
type NextTask struct {
	ID            uint               `json:"id"`
	GoalID        *uint              `json:"goal_id,omitempty"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	Status        task.Status        `json:"status"`
	Priority      priority.Priority  `json:"priority"`
	EstimatedTime *int               `json:"estimated_time,omitempty"`
	DueDate       *util.Date         `json:"due_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	GoalTitle     *string            `json:"goal_title,omitempty"`
	GoalPriority  *priority.Priority `json:"goal_priority,omitempty"`
}

type Repository interface {
	NextPending(ctx context.Context) (*NextTask, error)
}

type repository struct {
	store *storage.Provider
}

func NewRepository(store *storage.Provider) Repository {
	return &repository{store: store}
}

// NextPending selects the single most urgent pending task: lowest
// (goal-priority rank, task-priority rank, due date) tuple, due dates
// ascending with NULLs last. A nil result with a nil error means the
// pending set is empty, which is a normal outcome.
func (r *repository) NextPending(ctx context.Context) (*NextTask, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.goal_id, t.title, t.description, t.status, t.priority,
		       t.estimated_time, t.due_date, t.created_at,
		       g.title AS goal_title, g.priority AS goal_priority
		FROM tasks t
		LEFT JOIN goals g ON g.id = t.goal_id
		WHERE t.status = ?
		ORDER BY %s, %s, t.due_date IS NULL, t.due_date ASC
		LIMIT 1`,
		priority.RankExpr("g.priority"),
		priority.RankExpr("t.priority"),
	)

	var next NextTask
	result := db.Raw(query, task.StatusPending).Scan(&next)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &next, nil
}
