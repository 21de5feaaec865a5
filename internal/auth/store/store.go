package store

import (
	"context"
	"errors"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Suggestions() Suggestions
	Reports() Reports

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by the normalized (lowercased,
	// trimmed) email. Used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateTheme sets the theme preference and bumps updated_at.
	UpdateTheme(ctx context.Context, userID string, theme domain.Theme) error

	// UpdateLocale sets the locale preference and bumps updated_at.
	UpdateLocale(ctx context.Context, userID string, locale domain.Locale) error

	// DeleteUser cascades to suggestions and reports (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Suggestions interface {
	// CreateSuggestion inserts a new course suggestion.
	CreateSuggestion(ctx context.Context, s domain.Suggestion) error

	// ListSuggestions returns all suggestions, newest first.
	ListSuggestions(ctx context.Context) ([]domain.Suggestion, error)
}

type Reports interface {
	// CreateReport inserts a new course problem report.
	CreateReport(ctx context.Context, r domain.Report) error

	// ListReportsByCourse returns reports for a course slug, newest first.
	ListReportsByCourse(ctx context.Context, slug string) ([]domain.Report, error)
}
