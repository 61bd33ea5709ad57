package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/brunohenrs/northstar/internal/config"
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

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid goal payload")
		config.Error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			config.Error(w, http.StatusBadRequest, "validation failed", "title is required and must be non-empty")
			return
		}
		config.QueryError(w, start, err)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	goals, err := h.service.List(r.Context())
	if err != nil {
		config.QueryError(w, start, err)
		return
	}

	config.JSON(w, http.StatusOK, goals)
}
