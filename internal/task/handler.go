package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/storage"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := config.WithContext(r.Context())

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid task payload")
		config.Error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired):
			config.Error(w, http.StatusBadRequest, "validation failed", "title is required and must be non-empty")
		case storage.IsConstraintViolation(err):
			config.Error(w, http.StatusBadRequest, "validation failed", "goal_id does not reference an existing goal")
		default:
			config.QueryError(w, start, err)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter, err := filterFromQuery(r)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	tasks, err := h.service.List(r.Context(), filter)
	if err != nil {
		config.QueryError(w, start, err)
		return
	}

	config.JSON(w, http.StatusOK, tasks)
}

func filterFromQuery(r *http.Request) (Filter, error) {
	var filter Filter

	if raw := r.URL.Query().Get("goal_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, errors.New("goal_id must be an integer")
		}
		goalID := uint(id)
		filter.GoalID = &goalID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := Status(raw)
		filter.Status = &status
	}
	return filter, nil
}
