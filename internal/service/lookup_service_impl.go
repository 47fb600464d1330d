package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
)

type areaService struct {
	areas repository.AreaRepo
}

func NewAreaService(areas repository.AreaRepo) AreaService {
	return &areaService{areas: areas}
}

func (s *areaService) List(ctx context.Context) ([]*domain.AreaRecord, error) {
	return s.areas.List(ctx)
}

func (s *areaService) Ensure(ctx context.Context, name string) (*domain.AreaRecord, error) {
	return ensureArea(ctx, s.areas, name)
}

type teamService struct {
	teams repository.TeamRepo
}

func NewTeamService(teams repository.TeamRepo) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamService) Ensure(ctx context.Context, name string) (*domain.Team, error) {
	return ensureTeam(ctx, s.teams, name)
}

// ensureArea and ensureTeam implement get-or-create by name. They take
// the repository as a parameter so callers can pass tx-scoped repos.

func ensureArea(ctx context.Context, areas repository.AreaRepo, name string) (*domain.AreaRecord, error) {
	existing, err := areas.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	record := &domain.AreaRecord{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := areas.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func ensureTeam(ctx context.Context, teams repository.TeamRepo, name string) (*domain.Team, error) {
	existing, err := teams.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	team := &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}
