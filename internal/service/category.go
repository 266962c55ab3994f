package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
	"github.com/opentransit/stationhub/internal/store"
	"github.com/opentransit/stationhub/pkg/idx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryInput struct {
	Name        string
	Description string
	Icon        string
}

type CategoryService struct {
	Store store.Store
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (domain.Category, error) {
	log := slogx.FromContext(ctx)

	now := time.Now().UTC()
	category := domain.Category{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Categories().CreateCategory(ctx, category); err != nil {
		log.Error("failed to create category", slog.Any("error", err))
		return domain.Category{}, err
	}

	log.Info("category created", slog.String("category_id", category.ID))
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Category, error) {
	category, err := s.Store.Categories().GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().ListCategories(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (domain.Category, error) {
	category := domain.Category{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
	}

	if err := s.Store.Categories().UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	return s.Get(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id string) (domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	if err := s.Store.Categories().DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return category, nil
}
