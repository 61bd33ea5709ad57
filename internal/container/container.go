package container

import (
	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/focus"
	"github.com/brunohenrs/northstar/internal/focussession"
	"github.com/brunohenrs/northstar/internal/goal"
	"github.com/brunohenrs/northstar/internal/health"
	"github.com/brunohenrs/northstar/internal/learning"
	"github.com/brunohenrs/northstar/internal/progress"
	"github.com/brunohenrs/northstar/internal/resource"
	"github.com/brunohenrs/northstar/internal/storage"
	"github.com/brunohenrs/northstar/internal/task"
)

type Container struct {
	Store             *storage.Provider
	GoalContainer     *goal.Container
	TaskContainer     *task.Container
	FocusContainer    *focus.Container
	ProgressContainer *progress.Container
	HealthHandler     *health.Handler
}

// models is the full entity list handed to the schema initializer. The
// last three have no API surface yet but their tables and cascade chains
// are part of the persisted schema.
func models() []any {
	return []any{
		&goal.Goal{},
		&task.Task{},
		&resource.Resource{},
		&focussession.FocusSession{},
		&learning.LearningPattern{},
	}
}

// New wires the full read-write process. The storage target is resolved
// exactly once here and cached in the provider.
func New() *Container {
	config.Init()

	target := storage.Resolve(config.DatabasePath(), storage.DefaultCandidates())
	store := storage.NewProvider(target, models()...)

	return build(store, false)
}

// NewReadOnly wires the gateway process against the same storage target,
// opened read-only.
func NewReadOnly() *Container {
	config.Init()

	target := storage.Resolve(config.DatabasePath(), storage.DefaultCandidates())
	store := storage.NewReadOnlyProvider(target, models()...)

	return build(store, true)
}

func build(store *storage.Provider, readOnly bool) *Container {
	return &Container{
		Store:             store,
		GoalContainer:     goal.NewContainer(store),
		TaskContainer:     task.NewContainer(store),
		FocusContainer:    focus.NewContainer(store),
		ProgressContainer: progress.NewContainer(store),
		HealthHandler:     health.NewHandler(store, readOnly),
	}
}
