package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/internal/auth/store/drivers/sqlite"
	"github.com/cursoteca/cursoteca/pkg/captcha"
	"github.com/cursoteca/cursoteca/pkg/cryptox"
	"github.com/cursoteca/cursoteca/pkg/jwtx"
)

var pepperOnce sync.Once

// newTestStore opens a migrated sqlite store backed by a temp file.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	pepperOnce.Do(func() {
		cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	})

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Store:   newTestStore(t),
		Codec:   jwtx.NewCodec("service-test-secret", "", "cursoteca-auth"),
		Captcha: captcha.Static{Verdict: true},
	}
}

func validRegister() RegisterParams {
	return RegisterParams{
		Name:            "Ada Lovelace",
		Email:           "Ada@Example.com",
		Password:        "Sup3r#Secret",
		ConfirmPassword: "Sup3r#Secret",
		CaptchaToken:    "ok",
		Locale:          "en-US",
	}
}
