package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/roadmap"
)

type dashboardService struct {
	items  repository.ItemRepo
	alerts repository.AlertRepo
}

func NewDashboardService(items repository.ItemRepo, alerts repository.AlertRepo) DashboardService {
	return &dashboardService{items: items, alerts: alerts}
}

func (s *dashboardService) Metrics(ctx context.Context, c domain.Criteria) (*roadmap.Metrics, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	m := roadmap.Aggregate(roadmap.Filter(items, c), time.Now().UTC())
	return &m, nil
}

// GenerateAlerts materializes a risk alert for every currently at-risk
// item that has no open alert yet. Dismissed alerts are gone from the
// store, so dismissing and staying behind schedule re-alerts on the
// next run.
func (s *dashboardService) GenerateAlerts(ctx context.Context, now time.Time) (int, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return 0, err
	}
	open, err := s.alerts.List(ctx)
	if err != nil {
		return 0, err
	}

	alerted := make(map[string]bool, len(open))
	for _, a := range open {
		if a.Kind == domain.AlertRisk && a.ItemID != nil {
			alerted[*a.ItemID] = true
		}
	}

	created := 0
	for _, it := range items {
		if !roadmap.AtRisk(it, now) || alerted[it.ID] {
			continue
		}
		sched := roadmap.ComputeSchedule(it, now)
		itemID := it.ID
		alert := &domain.Alert{
			ID:    uuid.New().String(),
			Kind:  domain.AlertRisk,
			Title: fmt.Sprintf("%s is behind schedule", it.Name),
			Description: fmt.Sprintf("%.0f%% done against an expected %.0f%% (gap %.0f points)",
				float64(it.Progress), sched.ExpectedProgress, sched.Gap),
			ItemID:    &itemID,
			CreatedAt: now,
		}
		if err := s.alerts.Create(ctx, alert); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
