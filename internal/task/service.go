package task

import (
	"context"
	"errors"
	"strings"

	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/priority"
)

var ErrTitleRequired = errors.New("title is required")

type Service interface {
	Create(ctx context.Context, dto CreateTaskDTO) (*CreateTaskResponse, error)
	List(ctx context.Context, filter Filter) ([]Task, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists a new task. Referential integrity of goal_id is enforced
// by the storage layer's foreign-key constraint, not re-checked here.
func (s *service) Create(ctx context.Context, dto CreateTaskDTO) (*CreateTaskResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}

	t := Task{
		GoalID:        dto.GoalID,
		Title:         dto.Title,
		Description:   dto.Description,
		Status:        dto.Status,
		Priority:      dto.Priority,
		EstimatedTime: dto.EstimatedTime,
		DueDate:       dto.DueDate,
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = priority.Medium
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithField("task_id", t.ID).Info("Task created")
	return &CreateTaskResponse{ID: t.ID, Message: "task created"}, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]Task, error) {
	tasks, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list tasks")
		return nil, err
	}
	return tasks, nil
}
