package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, full_name, username, email, password, role,
	is_active, activation_code, profile_picture, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FullName, u.Username, u.Email, u.Password, u.Role.String(),
		u.IsActive, u.ActivationCode, u.ProfilePicture, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE (email = ? OR username = ?) AND is_active = 1`,
		identifier, identifier)
	return scanUser(row)
}

// RedeemActivationCode is a single find-and-update statement so two
// concurrent redemptions of the same code cannot both observe an inactive
// record.
func (r *usersRepo) RedeemActivationCode(ctx context.Context, code string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET is_active = 1, updated_at = ?
		WHERE activation_code = ?
		RETURNING `+userColumns,
		time.Now().UTC(), code)
	return scanUser(row)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, fullName, profilePicture string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET full_name = ?, profile_picture = ?, updated_at = ?
		WHERE id = ?`,
		fullName, profilePicture, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdatePassword(ctx context.Context, userID, encoded string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password = ?, updated_at = ?
		WHERE id = ?`,
		encoded, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(
		&u.ID, &u.FullName, &u.Username, &u.Email, &u.Password, &role,
		&u.IsActive, &u.ActivationCode, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	return u, nil
}
