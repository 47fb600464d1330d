package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
)

type alertService struct {
	alerts repository.AlertRepo
}

func NewAlertService(alerts repository.AlertRepo) AlertService {
	return &alertService{alerts: alerts}
}

func (s *alertService) Create(ctx context.Context, a *domain.Alert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now().UTC()
	if a.Kind == "" {
		a.Kind = domain.AlertInfo
	}
	if !a.Kind.Valid() {
		return fmt.Errorf("unknown alert kind %q", a.Kind)
	}
	if a.Title == "" {
		return fmt.Errorf("alert title is required")
	}
	return s.alerts.Create(ctx, a)
}

func (s *alertService) List(ctx context.Context) ([]*domain.Alert, error) {
	return s.alerts.List(ctx)
}

func (s *alertService) Dismiss(ctx context.Context, id string) error {
	return s.alerts.Dismiss(ctx, id)
}
