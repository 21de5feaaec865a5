package sqlite

import (
	"context"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, theme, locale, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, theme, locale, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Theme), string(u.Locale), now, now)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateTheme(ctx context.Context, userID string, theme domain.Theme) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET theme = ?, updated_at = ? WHERE id = ?`,
		string(theme), nowUTC(), userID)
	return err
}

func (r *usersRepo) UpdateLocale(ctx context.Context, userID string, locale domain.Locale) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET locale = ?, updated_at = ? WHERE id = ?`,
		string(locale), nowUTC(), userID)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var theme, locale string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&theme, &locale, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Theme = domain.Theme(theme)
	u.Locale = domain.Locale(locale)
	return u, nil
}
