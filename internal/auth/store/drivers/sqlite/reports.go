package sqlite

import (
	"context"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
)

type reportsRepo struct {
	db dbtx
}

func (r *reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (id, user_id, course_id, course_slug, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.UserID, rep.CourseID, rep.CourseSlug, rep.Description, nowUTC())
	return mapConstraint(err)
}

func (r *reportsRepo) ListReportsByCourse(ctx context.Context, slug string) ([]domain.Report, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, course_id, course_slug, description, created_at
		 FROM reports WHERE course_slug = ? ORDER BY created_at DESC, id DESC`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.CourseID,
			&rep.CourseSlug, &rep.Description, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
