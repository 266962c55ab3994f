package store

import (
	"context"
	"errors"

	"github.com/opentransit/stationhub/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
//
// The auth subsystem deliberately has no transaction helper: every
// operation that must be atomic (user creation under the uniqueness
// constraint, activation-code redemption) is a single statement, and
// correctness is delegated to the driver's atomic primitives.
type Store interface {
	Users() Users
	Stations() Stations
	Categories() Categories

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id provided by the app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken; the
	// UNIQUE constraints enforce this, not a check-then-insert.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByIdentifier matches email OR username, restricted to active
	// accounts. Used during login.
	GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error)

	// RedeemActivationCode atomically locates the record whose activation
	// code matches and sets is_active in the same statement. Exactly one
	// of two concurrent redeemers observes the inactive record.
	RedeemActivationCode(ctx context.Context, code string) (domain.User, error)

	// UpdateProfile mutates full_name and profile_picture, bumps updated_at.
	UpdateProfile(ctx context.Context, userID, fullName, profilePicture string) error

	// UpdatePassword sets the encoded password, bumps updated_at.
	UpdatePassword(ctx context.Context, userID, encoded string) error
}

type Stations interface {
	// CreateStation inserts a new station. Returns ErrAlreadyExists when
	// the slug is taken.
	CreateStation(ctx context.Context, s domain.Station) error

	GetStationByID(ctx context.Context, id string) (domain.Station, error)
	GetStationBySlug(ctx context.Context, slug string) (domain.Station, error)

	// ListStations returns a page of stations ordered newest first,
	// optionally filtered by a case-insensitive name search, plus the total
	// match count for pagination meta.
	ListStations(ctx context.Context, search string, limit, offset int) ([]domain.Station, int64, error)

	UpdateStation(ctx context.Context, s domain.Station) error
	DeleteStation(ctx context.Context, id string) error
}

type Categories interface {
	CreateCategory(ctx context.Context, c domain.Category) error
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}
