package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brunohenrs/northstar/internal/focus"
	"github.com/brunohenrs/northstar/internal/goal"
	"github.com/brunohenrs/northstar/internal/health"
	"github.com/brunohenrs/northstar/internal/middlewares"
	"github.com/brunohenrs/northstar/internal/progress"
	"github.com/brunohenrs/northstar/internal/task"
)

const requestDeadline = 5 * time.Second

type RouterConfig struct {
	GoalHandler     *goal.Handler
	TaskHandler     *task.Handler
	FocusHandler    *focus.Handler
	ProgressHandler *progress.Handler
	HealthHandler   *health.Handler

	// ReadOnly switches on the gateway guard. The route table itself is
	// shared between both surfaces so ordering and filtering semantics
	// cannot drift.
	ReadOnly bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	if cfg.ReadOnly {
		r.Use(middlewares.ReadOnlyGuard)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(requestDeadline))

		r.Get("/health", cfg.HealthHandler.Check)

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
		r.Mount("/focus", focus.Routes(cfg.FocusHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
	})

	return r
}
