package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
}

func NewMilestoneService(milestones repository.MilestoneRepo) MilestoneService {
	return &milestoneService{milestones: milestones}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()
	if err := m.Validate(); err != nil {
		return err
	}
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) List(ctx context.Context) ([]*domain.Milestone, error) {
	return s.milestones.List(ctx)
}
