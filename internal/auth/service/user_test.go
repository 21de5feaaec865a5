package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()

	auth := newAuthService(t)
	users := &UserService{Store: auth.Store}

	registered, _, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	t.Run("fetches by id", func(t *testing.T) {
		user, err := users.GetUserByID(ctx, registered.ID)
		require.NoError(t, err)
		require.Equal(t, registered.Email, user.Email)
	})

	t.Run("unknown id maps to ErrUserNotFound", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, "01J00000000000000000000000")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("updates theme", func(t *testing.T) {
		require.NoError(t, users.UpdateTheme(ctx, registered.ID, domain.ThemeDark))

		user, err := users.GetUserByID(ctx, registered.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ThemeDark, user.Theme)
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		err := users.UpdateTheme(ctx, registered.ID, "sepia")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("updates locale", func(t *testing.T) {
		require.NoError(t, users.UpdateLocale(ctx, registered.ID, domain.LocaleESES))

		user, err := users.GetUserByID(ctx, registered.ID)
		require.NoError(t, err)
		require.Equal(t, domain.LocaleESES, user.Locale)
	})

	t.Run("rejects unknown locale", func(t *testing.T) {
		err := users.UpdateLocale(ctx, registered.ID, "fr-FR")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
