package health

import (
	"net/http"
	"time"

	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/storage"
	"github.com/google/uuid"
)

// Handler reports process and storage health. It always answers 200: a
// degraded store is described in the body so monitoring can tell
// "alive but degraded" from "unreachable". The instance id changes on every
// boot, which makes restarts observable to clients of the transient store.
type Handler struct {
	store      *storage.Provider
	mode       string
	instanceID string
	started    time.Time
}

func NewHandler(store *storage.Provider, readOnly bool) *Handler {
	mode := "read-write"
	if readOnly {
		mode = "read-only"
	}
	return &Handler{
		store:      store,
		mode:       mode,
		instanceID: uuid.NewString(),
		started:    time.Now(),
	}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	database := "connected"

	if err := h.store.Ping(r.Context()); err != nil {
		status = "degraded"
		database = "error"
	} else if h.store.Transient() {
		status = "degraded"
		database = "transient"
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"status":         status,
		"database":       database,
		"mode":           h.mode,
		"instance_id":    h.instanceID,
		"uptime_seconds": int(time.Since(h.started).Seconds()),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
