package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/store"
	"github.com/cursoteca/cursoteca/pkg/captcha"
	"github.com/cursoteca/cursoteca/pkg/idx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

// maxReportDescription bounds a problem report's description.
const maxReportDescription = 512

// ReportService handles problem reports filed against courses.
type ReportService struct {
	Store   store.Store
	Captcha captcha.Verifier
}

type ReportParams struct {
	UserID       string
	CourseID     string
	CourseSlug   string
	Description  string
	CaptchaToken string
}

// Create validates and stores a new problem report, returning its id.
func (s *ReportService) Create(ctx context.Context, p ReportParams) (domain.Report, error) {
	log := slogx.FromContext(ctx)

	if p.CourseID == "" {
		return domain.Report{}, validationErr("course id is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return domain.Report{}, validationErr("description is required")
	}
	if len(p.Description) > maxReportDescription {
		return domain.Report{}, validationErr("description must not exceed 512 characters")
	}

	if p.CaptchaToken == "" {
		return domain.Report{}, ErrCaptchaRequired
	}
	if !s.Captcha.Verify(ctx, p.CaptchaToken) {
		return domain.Report{}, ErrCaptchaFailed
	}

	report := domain.Report{
		ID:          idx.New().String(),
		UserID:      p.UserID,
		CourseID:    p.CourseID,
		CourseSlug:  p.CourseSlug,
		Description: strings.TrimSpace(p.Description),
	}

	if err := s.Store.Reports().CreateReport(ctx, report); err != nil {
		return domain.Report{}, err
	}

	log.Info("course problem reported",
		slog.String("report_id", report.ID),
		slog.String("course_slug", report.CourseSlug),
	)
	return report, nil
}
