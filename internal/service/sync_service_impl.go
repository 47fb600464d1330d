package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/syncer"
	"github.com/rsoares/roadmap/internal/tracker"
)

type syncService struct {
	config repository.TrackerConfigRepo
	issues repository.TrackerIssueRepo
	items  repository.ItemRepo

	// newClient is swappable so tests can point at a fake tracker.
	newClient func(tracker.Config) tracker.Client
}

func NewSyncService(config repository.TrackerConfigRepo, issues repository.TrackerIssueRepo, items repository.ItemRepo) SyncService {
	return &syncService{
		config:    config,
		issues:    issues,
		items:     items,
		newClient: tracker.NewClient,
	}
}

func (s *syncService) Configure(ctx context.Context, baseURL, email, token string) error {
	if baseURL == "" || email == "" || token == "" {
		return fmt.Errorf("tracker url, email and api token are all required")
	}

	now := time.Now().UTC()
	cfg := &domain.TrackerConfig{
		BaseURL:   baseURL,
		Email:     email,
		APIToken:  tracker.ObscureToken(token),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.config.Get(ctx); err != nil {
		return err
	} else if existing != nil {
		cfg.CreatedAt = existing.CreatedAt
	}
	return s.config.Save(ctx, cfg)
}

func (s *syncService) Config(ctx context.Context) (*domain.TrackerConfig, error) {
	return s.config.Get(ctx)
}

func (s *syncService) TestConnection(ctx context.Context) (bool, error) {
	cfg, err := s.clientConfig(ctx)
	if err != nil {
		return false, err
	}
	return s.newClient(cfg).TestConnection(ctx), nil
}

func (s *syncService) Issues(ctx context.Context) ([]*domain.TrackerIssue, error) {
	return s.issues.List(ctx)
}

func (s *syncService) Sync(ctx context.Context) (*syncer.Result, error) {
	cfg, err := s.clientConfig(ctx)
	if err != nil {
		return nil, err
	}
	rec := syncer.NewReconciler(s.newClient(cfg), s.items, s.issues, cfg.PageSize)
	return rec.Sync(ctx)
}

// clientConfig resolves the effective tracker connection: the stored
// configuration when present, environment variables otherwise.
func (s *syncService) clientConfig(ctx context.Context) (tracker.Config, error) {
	cfg := tracker.LoadConfig()

	stored, err := s.config.Get(ctx)
	if err != nil {
		return tracker.Config{}, err
	}
	if stored != nil {
		token, err := tracker.RevealToken(stored.APIToken)
		if err != nil {
			return tracker.Config{}, err
		}
		cfg.BaseURL = stored.BaseURL
		cfg.Email = stored.Email
		cfg.APIToken = token
	}

	if !cfg.Configured() {
		return tracker.Config{}, tracker.ErrNotConfigured
	}
	return cfg, nil
}
