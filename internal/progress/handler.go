package progress

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

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := config.WithContext(r.Context())

	summary, err := h.repo.Summary(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute progress summary")
		config.QueryError(w, start, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
