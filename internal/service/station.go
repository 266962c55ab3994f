package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
	"github.com/opentransit/stationhub/internal/store"
	"github.com/opentransit/stationhub/pkg/idx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

var (
	ErrStationNotFound = errors.New("station not found")

	// ErrSlugTaken is returned when a station's derived slug collides with
	// an existing one.
	ErrSlugTaken = errors.New("station slug already in use")
)

type StationInput struct {
	Name        string
	Slug        string // optional; derived from Name when empty
	Description string
	Icon        string
	CategoryID  string
	Region      int64
	Latitude    float64
	Longitude   float64
}

// StationPage is a page of stations plus pagination counters.
type StationPage struct {
	Items      []domain.Station
	Page       int
	Total      int64
	TotalPages int64
}

type StationService struct {
	Store store.Store
}

// Slugify normalizes a station name into its URL slug. This is an explicit
// step of the create operation, not a storage-layer hook.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// Create inserts a new station owned by the verified caller. The slug is
// derived from the name unless the payload supplies one.
func (s *StationService) Create(ctx context.Context, createdBy string, in StationInput) (domain.Station, error) {
	log := slogx.FromContext(ctx)

	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}

	now := time.Now().UTC()
	station := domain.Station{
		ID:          idx.New().String(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Icon:        in.Icon,
		CategoryID:  in.CategoryID,
		CreatedBy:   createdBy,
		Region:      in.Region,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Stations().CreateStation(ctx, station); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Station{}, ErrSlugTaken
		}
		log.Error("failed to create station", slog.Any("error", err))
		return domain.Station{}, err
	}

	log.Info("station created",
		slog.String("station_id", station.ID),
		slog.String("slug", station.Slug),
	)
	return station, nil
}

func (s *StationService) Get(ctx context.Context, id string) (domain.Station, error) {
	station, err := s.Store.Stations().GetStationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Station{}, ErrStationNotFound
		}
		return domain.Station{}, err
	}
	return station, nil
}

func (s *StationService) GetBySlug(ctx context.Context, slug string) (domain.Station, error) {
	station, err := s.Store.Stations().GetStationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Station{}, ErrStationNotFound
		}
		return domain.Station{}, err
	}
	return station, nil
}

// List returns a page of stations ordered newest first, optionally
// filtered by a name search.
func (s *StationService) List(ctx context.Context, search string, limit, page int) (StationPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	items, total, err := s.Store.Stations().ListStations(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return StationPage{}, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return StationPage{
		Items:      items,
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *StationService) Update(ctx context.Context, id string, in StationInput) (domain.Station, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Station{}, err
	}

	slug := in.Slug
	if slug == "" {
		slug = current.Slug
	}

	updated := domain.Station{
		ID:          current.ID,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Icon:        in.Icon,
		CategoryID:  in.CategoryID,
		CreatedBy:   current.CreatedBy,
		Region:      in.Region,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}

	if err := s.Store.Stations().UpdateStation(ctx, updated); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Station{}, ErrStationNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Station{}, ErrSlugTaken
		}
		return domain.Station{}, err
	}

	return s.Get(ctx, id)
}

func (s *StationService) Delete(ctx context.Context, id string) (domain.Station, error) {
	station, err := s.Get(ctx, id)
	if err != nil {
		return domain.Station{}, err
	}

	if err := s.Store.Stations().DeleteStation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Station{}, ErrStationNotFound
		}
		return domain.Station{}, err
	}
	return station, nil
}
