package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
)

type stationsRepo struct {
	db *sql.DB
}

const stationColumns = `id, name, slug, description, icon, category_id,
	created_by, region, latitude, longitude, created_at, updated_at`

func (r *stationsRepo) CreateStation(ctx context.Context, s domain.Station) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stations (`+stationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Slug, s.Description, s.Icon, s.CategoryID,
		s.CreatedBy, s.Region, s.Latitude, s.Longitude, s.CreatedAt, s.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *stationsRepo) GetStationByID(ctx context.Context, id string) (domain.Station, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+stationColumns+` FROM stations WHERE id = ?`, id)
	return scanStation(row)
}

func (r *stationsRepo) GetStationBySlug(ctx context.Context, slug string) (domain.Station, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+stationColumns+` FROM stations WHERE slug = ?`, slug)
	return scanStation(row)
}

func (r *stationsRepo) ListStations(ctx context.Context, search string, limit, offset int) ([]domain.Station, int64, error) {
	pattern := "%" + search + "%"

	var total int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM stations
		WHERE (? = '' OR name LIKE ?)`, search, pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+stationColumns+` FROM stations
		WHERE (? = '' OR name LIKE ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		search, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Station
	for rows.Next() {
		s, err := scanStationRows(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *stationsRepo) UpdateStation(ctx context.Context, s domain.Station) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stations
		SET name = ?, slug = ?, description = ?, icon = ?, category_id = ?,
			region = ?, latitude = ?, longitude = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.Slug, s.Description, s.Icon, s.CategoryID,
		s.Region, s.Latitude, s.Longitude, time.Now().UTC(), s.ID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *stationsRepo) DeleteStation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanStation(row *sql.Row) (domain.Station, error) {
	var s domain.Station
	err := row.Scan(
		&s.ID, &s.Name, &s.Slug, &s.Description, &s.Icon, &s.CategoryID,
		&s.CreatedBy, &s.Region, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Station{}, mapNotFound(err)
	}
	return s, nil
}

func scanStationRows(rows *sql.Rows) (domain.Station, error) {
	var s domain.Station
	err := rows.Scan(
		&s.ID, &s.Name, &s.Slug, &s.Description, &s.Icon, &s.CategoryID,
		&s.CreatedBy, &s.Region, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
