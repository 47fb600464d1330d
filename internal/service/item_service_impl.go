package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/repository"
	"github.com/rsoares/roadmap/internal/roadmap"
)

type itemService struct {
	items repository.ItemRepo
	uow   db.UnitOfWork
}

func NewItemService(items repository.ItemRepo, uow db.UnitOfWork) ItemService {
	return &itemService{items: items, uow: uow}
}

func (s *itemService) Create(ctx context.Context, it *domain.Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	if it.Status == "" {
		it.Status = domain.StatusTodo
	}
	if it.Source == "" {
		it.Source = domain.SourceManual
	}
	// Every human write marks the item as manually shaped, which blocks
	// the sync path from overwriting it later.
	it.ManualEdit = true

	if err := it.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		txAreas := repository.NewSQLiteAreaRepo(tx)
		txTeams := repository.NewSQLiteTeamRepo(tx)

		area, err := ensureArea(ctx, txAreas, string(it.Area))
		if err != nil {
			return err
		}
		if err := txAreas.IncrementUsage(ctx, area.ID); err != nil {
			return err
		}

		if it.TeamName != "" {
			team, err := ensureTeam(ctx, txTeams, it.TeamName)
			if err != nil {
				return err
			}
			if err := txTeams.IncrementUsage(ctx, team.ID); err != nil {
				return err
			}
			it.TeamID = &team.ID
		}

		return txItems.Create(ctx, it)
	})
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.items.List(ctx)
}

func (s *itemService) ListFiltered(ctx context.Context, c domain.Criteria) ([]*domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return roadmap.Filter(items, c), nil
}

func (s *itemService) Update(ctx context.Context, it *domain.Item) error {
	it.UpdatedAt = time.Now().UTC()
	it.ManualEdit = true
	if err := it.Validate(); err != nil {
		return err
	}
	return s.items.Update(ctx, it)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
