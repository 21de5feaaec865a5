package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/pkg/captcha"
)

func validSuggestion(userID string) SuggestionParams {
	return SuggestionParams{
		UserID:       userID,
		Title:        "Curso de Go",
		CourseURL:    "https://www.youtube.com/watch?v=abc123",
		Category:     "programming",
		Description:  "A solid introduction to Go.",
		CaptchaToken: "ok",
	}
}

func TestSuggestionService(t *testing.T) {
	ctx := context.Background()

	auth := newAuthService(t)
	svc := &SuggestionService{Store: auth.Store, Captcha: captcha.Static{Verdict: true}}

	user, _, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	t.Run("creates and lists newest first", func(t *testing.T) {
		first, err := svc.Create(ctx, validSuggestion(user.ID))
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)

		p := validSuggestion(user.ID)
		p.Title = "Curso de SQL"
		second, err := svc.Create(ctx, p)
		require.NoError(t, err)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
	})

	t.Run("accepts youtu.be short links", func(t *testing.T) {
		p := validSuggestion(user.ID)
		p.CourseURL = "https://youtu.be/abc123"
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	})

	t.Run("rejects non-YouTube URLs", func(t *testing.T) {
		p := validSuggestion(user.ID)
		p.CourseURL = "https://vimeo.com/12345"
		_, err := svc.Create(ctx, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		p := validSuggestion(user.ID)
		p.Category = ""
		_, err := svc.Create(ctx, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("captcha is mandatory", func(t *testing.T) {
		p := validSuggestion(user.ID)
		p.CaptchaToken = ""
		_, err := svc.Create(ctx, p)
		require.ErrorIs(t, err, ErrCaptchaRequired)
	})
}

func TestReportService(t *testing.T) {
	ctx := context.Background()

	auth := newAuthService(t)
	svc := &ReportService{Store: auth.Store, Captcha: captcha.Static{Verdict: true}}

	user, _, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	valid := func() ReportParams {
		return ReportParams{
			UserID:       user.ID,
			CourseID:     "course-1",
			CourseSlug:   "curso-de-go",
			Description:  "Episode 3 link is broken.",
			CaptchaToken: "ok",
		}
	}

	t.Run("creates a report", func(t *testing.T) {
		report, err := svc.Create(ctx, valid())
		require.NoError(t, err)
		require.NotEmpty(t, report.ID)

		list, err := auth.Store.Reports().ListReportsByCourse(ctx, "curso-de-go")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, report.ID, list[0].ID)
	})

	t.Run("rejects oversized descriptions", func(t *testing.T) {
		p := valid()
		for len(p.Description) <= maxReportDescription {
			p.Description += p.Description
		}
		_, err := svc.Create(ctx, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects blank descriptions", func(t *testing.T) {
		p := valid()
		p.Description = "   "
		_, err := svc.Create(ctx, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects missing course id", func(t *testing.T) {
		p := valid()
		p.CourseID = ""
		_, err := svc.Create(ctx, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("captcha failure blocks the report", func(t *testing.T) {
		closed := &ReportService{Store: auth.Store, Captcha: captcha.Static{Verdict: false}}
		_, err := closed.Create(ctx, valid())
		require.ErrorIs(t, err, ErrCaptchaFailed)
	})
}
