package goal

import (
	"context"
	"errors"
	"strings"

	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/priority"
)

var ErrTitleRequired = errors.New("title is required")

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*CreateGoalResponse, error)
	List(ctx context.Context) ([]Goal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*CreateGoalResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}

	g := Goal{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		TargetDate:  dto.TargetDate,
		Priority:    dto.Priority,
	}
	if g.Priority == "" {
		g.Priority = priority.Medium
	}

	if err := s.repo.Create(ctx, &g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return &CreateGoalResponse{ID: g.ID, Message: "goal created"}, nil
}

func (s *service) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}
