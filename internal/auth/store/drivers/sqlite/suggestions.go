package sqlite

import (
	"context"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
)

type suggestionsRepo struct {
	db dbtx
}

func (r *suggestionsRepo) CreateSuggestion(ctx context.Context, s domain.Suggestion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO suggestions (id, user_id, title, course_url, category, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Title, s.CourseURL, s.Category, s.Description, nowUTC())
	return mapConstraint(err)
}

func (r *suggestionsRepo) ListSuggestions(ctx context.Context) ([]domain.Suggestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, course_url, category, description, created_at
		 FROM suggestions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Suggestion
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.CourseURL,
			&s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
