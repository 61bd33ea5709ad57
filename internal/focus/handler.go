package focus

import (
	"net/http"
	"time"

	"github.com/brunohenrs/northstar/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// NextTask answers the focus view. An empty pending set is reported with
// the sentinel message and a 200, not an error.
func (h *Handler) NextTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := config.WithContext(r.Context())

	next, err := h.repo.NextPending(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to select next task")
		config.QueryError(w, start, err)
		return
	}

	if next == nil {
		config.JSON(w, http.StatusOK, map[string]string{"message": "no pending tasks"})
		return
	}

	config.JSON(w, http.StatusOK, next)
}
