package progress

import (
	"context"

	"github.com/brunohenrs/northstar/internal/storage"
)

type GoalSummary struct {
	TotalGoals      int     `json:"total_goals"`
	CompletedGoals  int     `json:"completed_goals"`
	AverageProgress float64 `json:"average_progress"`
	CategoriesCount int     `json:"categories_count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type Summary struct {
	Summary GoalSummary   `json:"summary"`
	Tasks   []StatusCount `json:"tasks"`
}

type Repository interface {
	Summary(ctx context.Context) (*Summary, error)
}

type repository struct {
	store *storage.Provider
}

func NewRepository(store *storage.Provider) Repository {
	return &repository{store: store}
}

// Summary runs two independent aggregate queries. They are not wrapped in
// a transaction: a task changing status between the two reads is an
// accepted race for a dashboard.
func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var goals GoalSummary
	// AVG over zero rows is NULL; the summary reports 0 instead.
	// COUNT(DISTINCT category) already ignores NULL categories.
	if err := db.Raw(`
		SELECT COUNT(*) AS total_goals,
		       COALESCE(SUM(CASE WHEN progress = 100 THEN 1 ELSE 0 END), 0) AS completed_goals,
		       COALESCE(AVG(progress), 0) AS average_progress,
		       COUNT(DISTINCT category) AS categories_count
		FROM goals`).Scan(&goals).Error; err != nil {
		return nil, err
	}

	tasks := make([]StatusCount, 0)
	if err := db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM tasks
		GROUP BY status`).Scan(&tasks).Error; err != nil {
		return nil, err
	}

	return &Summary{Summary: goals, Tasks: tasks}, nil
}
