package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/internal/auth/store/drivers/sqlite"
	"github.com/cursoteca/cursoteca/pkg/captcha"
	"github.com/cursoteca/cursoteca/pkg/cryptox"
	"github.com/cursoteca/cursoteca/pkg/jwtx"
	"github.com/cursoteca/cursoteca/pkg/ratelimit"
)

var pepperOnce sync.Once

// newTestRouter wires a full router against a temp sqlite store, the
// in-memory rate limiter and an always-pass captcha verifier.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	pepperOnce.Do(func() {
		cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	})

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec := jwtx.NewCodec("router-test-secret", "", "cursoteca-auth")
	verifier := captcha.Static{Verdict: true}

	router := NewRouter(codec, ratelimit.NewMemoryStore(), "test", false, st,
		slog.New(slog.DiscardHandler))
	router.AuthService = &service.AuthService{Store: st, Codec: codec, Captcha: verifier}
	router.UserService = &service.UserService{Store: st}
	router.SuggestionService = &service.SuggestionService{Store: st, Captcha: verifier}
	router.ReportService = &service.ReportService{Store: st, Captcha: verifier}
	router.ApplyRoutes()

	return router
}

// doJSON performs a request with an optional JSON body and cookies.
func doJSON(t *testing.T, router *Router, method, path string, body any, cookies []*http.Cookie, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func registerBody() map[string]string {
	return map[string]string{
		"name":            "Ada Lovelace",
		"email":           "ada@example.com",
		"password":        "Sup3r#Secret",
		"confirmPassword": "Sup3r#Secret",
		"recaptchaToken":  "ok",
		"locale":          "en-US",
	}
}

// registerSession registers a user and returns the session cookies.
func registerSession(t *testing.T, router *Router) []*http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", registerBody(), nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}
