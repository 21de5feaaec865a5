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

// SuggestionService handles course suggestions from authenticated users.
type SuggestionService struct {
	Store   store.Store
	Captcha captcha.Verifier
}

type SuggestionParams struct {
	UserID       string
	Title        string
	CourseURL    string
	Category     string
	Description  string
	CaptchaToken string
}

// Create validates and stores a new suggestion, returning its id.
func (s *SuggestionService) Create(ctx context.Context, p SuggestionParams) (domain.Suggestion, error) {
	log := slogx.FromContext(ctx)

	if p.Title == "" || p.CourseURL == "" || p.Category == "" || p.Description == "" {
		return domain.Suggestion{}, validationErr("missing required fields")
	}

	if p.CaptchaToken == "" {
		return domain.Suggestion{}, ErrCaptchaRequired
	}
	if !s.Captcha.Verify(ctx, p.CaptchaToken) {
		return domain.Suggestion{}, ErrCaptchaFailed
	}

	if !validYouTubeURL(p.CourseURL) {
		return domain.Suggestion{}, validationErr("invalid YouTube URL")
	}

	suggestion := domain.Suggestion{
		ID:          idx.New().String(),
		UserID:      p.UserID,
		Title:       strings.TrimSpace(p.Title),
		CourseURL:   strings.TrimSpace(p.CourseURL),
		Category:    p.Category,
		Description: strings.TrimSpace(p.Description),
	}

	if err := s.Store.Suggestions().CreateSuggestion(ctx, suggestion); err != nil {
		return domain.Suggestion{}, err
	}

	log.Info("suggestion recorded", slog.String("suggestion_id", suggestion.ID))
	return suggestion, nil
}

// List returns all suggestions, newest first.
func (s *SuggestionService) List(ctx context.Context) ([]domain.Suggestion, error) {
	return s.Store.Suggestions().ListSuggestions(ctx)
}
