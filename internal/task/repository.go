package task

import (
	"context"

	"github.com/brunohenrs/northstar/internal/priority"
	"github.com/brunohenrs/northstar/internal/storage"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context, filter Filter) ([]Task, error)
}

type repository struct {
	store *storage.Provider
}

func NewRepository(store *storage.Provider) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(t).Error
}

// FindAll returns tasks ordered by priority rank, then due date ascending
// with undated tasks last.
func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Task, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	q := db.Model(&Task{})
	if filter.GoalID != nil {
		q = q.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}

	tasks := make([]Task, 0)
	if err := q.
		Order(priority.RankExpr("priority") + ", due_date IS NULL, due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
