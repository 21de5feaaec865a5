package service

import (
	"context"
	"errors"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateTheme validates and persists a theme preference.
func (s *UserService) UpdateTheme(ctx context.Context, userID string, theme domain.Theme) error {
	if !domain.ValidTheme(theme) {
		return validationErr("invalid theme, use: light, dark or system")
	}
	return s.Store.Users().UpdateTheme(ctx, userID, theme)
}

// UpdateLocale validates and persists a locale preference.
func (s *UserService) UpdateLocale(ctx context.Context, userID string, locale domain.Locale) error {
	if !domain.ValidLocale(locale) {
		return validationErr("invalid locale")
	}
	return s.Store.Users().UpdateLocale(ctx, userID, locale)
}
