package goal

import (
	"context"

	"github.com/brunohenrs/northstar/internal/priority"
	"github.com/brunohenrs/northstar/internal/storage"
)

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	FindAll(ctx context.Context) ([]Goal, error)
}

type repository struct {
	store *storage.Provider
}

func NewRepository(store *storage.Provider) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, g *Goal) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(g).Error
}

// FindAll returns every goal, highest priority first, newest first within
// the same priority rank.
func (r *repository) FindAll(ctx context.Context) ([]Goal, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	goals := make([]Goal, 0)
	// datetime() normalizes the stored timestamp text so ordering does not
	// depend on fractional-second formatting; id breaks same-second ties
	// in insertion order.
	if err := db.
		Order(priority.RankExpr("priority") + ", datetime(created_at) DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
