package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/pkg/httpx"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates the account and establishes a session", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", registerBody(), nil, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody[SessionResponse](t, rec)
		require.True(t, body.Success)
		require.Equal(t, "ada@example.com", body.User.Email)

		cookies := rec.Result().Cookies()
		auth := cookieByName(cookies, AuthCookie)
		refresh := cookieByName(cookies, RefreshCookie)
		locale := cookieByName(cookies, LocaleCookie)

		require.NotNil(t, auth)
		require.NotNil(t, refresh)
		require.NotNil(t, locale)
		require.True(t, auth.HttpOnly)
		require.True(t, refresh.HttpOnly)
		require.True(t, locale.HttpOnly)
		require.Equal(t, http.SameSiteStrictMode, auth.SameSite)
		require.Equal(t, "en-US", locale.Value)

		// Raw tokens must never leak into the response body.
		require.NotContains(t, rec.Body.String(), auth.Value)
		require.NotContains(t, rec.Body.String(), refresh.Value)
	})

	t.Run("cookie lifetimes track the configured token TTLs", func(t *testing.T) {
		router := newTestRouter(t)
		router.AuthService.Codec.AccessTTL = 5 * time.Minute
		router.AuthService.Codec.RefreshTTL = 48 * time.Hour

		cookies := registerSession(t, router)
		require.Equal(t, int((5 * time.Minute).Seconds()), cookieByName(cookies, AuthCookie).MaxAge)
		require.Equal(t, int((48 * time.Hour).Seconds()), cookieByName(cookies, RefreshCookie).MaxAge)
	})

	t.Run("duplicate email answers 409", func(t *testing.T) {
		router := newTestRouter(t)
		registerSession(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", registerBody(), nil, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("weak password answers 400", func(t *testing.T) {
		router := newTestRouter(t)

		body := registerBody()
		body["password"] = "weakpassword"
		body["confirmPassword"] = "weakpassword"
		rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", body, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("valid credentials set session cookies", func(t *testing.T) {
		router := newTestRouter(t)
		registerSession(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
			"email":          "ada@example.com",
			"password":       "Sup3r#Secret",
			"recaptchaToken": "ok",
		}, nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.NotNil(t, cookieByName(cookies, AuthCookie))
		require.NotNil(t, cookieByName(cookies, RefreshCookie))

		body := decodeBody[SessionResponse](t, rec)
		require.Equal(t, "Ada Lovelace", body.User.Name)
		require.Equal(t, "system", body.User.Theme)
	})

	t.Run("wrong password answers uniform 401", func(t *testing.T) {
		router := newTestRouter(t)
		registerSession(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
			"email":          "ada@example.com",
			"password":       "Wrong#Secret1",
			"recaptchaToken": "ok",
		}, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		unknown := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
			"email":          "nobody@example.com",
			"password":       "Wrong#Secret1",
			"recaptchaToken": "ok",
		}, nil, nil)
		require.Equal(t, rec.Body.String(), unknown.Body.String(), "failure modes must be indistinguishable")
	})

	t.Run("login attempts beyond the window limit answer 429", func(t *testing.T) {
		router := newTestRouter(t)

		body := map[string]string{
			"email": "ada@example.com", "password": "Wrong#Secret1", "recaptchaToken": "ok",
		}
		var last int
		for i := 0; i < 6; i++ {
			rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", body, nil,
				map[string]string{"X-Forwarded-For": "203.0.113.9"})
			last = rec.Code
		}
		require.Equal(t, http.StatusTooManyRequests, last)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("rotates both cookies", func(t *testing.T) {
		router := newTestRouter(t)
		session := registerSession(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/refresh", nil, session, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rotated := rec.Result().Cookies()
		require.NotNil(t, cookieByName(rotated, AuthCookie))
		require.NotNil(t, cookieByName(rotated, RefreshCookie))
	})

	t.Run("no cookie answers 401", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/refresh", nil, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("access token in the refresh slot answers 401", func(t *testing.T) {
		router := newTestRouter(t)
		session := registerSession(t, router)

		forged := []*http.Cookie{{
			Name:  RefreshCookie,
			Value: cookieByName(session, AuthCookie).Value,
		}}
		rec := doJSON(t, router, http.MethodPost, "/v1/auth/refresh", nil, forged, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	csrfToken := func(t *testing.T, router *Router) (*http.Cookie, string) {
		rec := doJSON(t, router, http.MethodGet, "/v1/auth/csrf", nil, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[CSRFResponse](t, rec)
		return cookieByName(rec.Result().Cookies(), httpx.CSRFCookie), body.CSRFToken
	}

	t.Run("clears cookies with a valid CSRF pair", func(t *testing.T) {
		router := newTestRouter(t)
		session := registerSession(t, router)
		cookie, token := csrfToken(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil,
			append(session, cookie), map[string]string{httpx.CSRFHeader: token})
		require.Equal(t, http.StatusOK, rec.Code)

		for _, name := range []string{AuthCookie, RefreshCookie, httpx.CSRFCookie} {
			cleared := cookieByName(rec.Result().Cookies(), name)
			require.NotNil(t, cleared, name)
			require.Equal(t, -1, cleared.MaxAge, name)
		}
	})

	t.Run("is idempotent without a session", func(t *testing.T) {
		router := newTestRouter(t)
		cookie, token := csrfToken(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil,
			[]*http.Cookie{cookie}, map[string]string{httpx.CSRFHeader: token})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing CSRF header answers 403", func(t *testing.T) {
		router := newTestRouter(t)
		session := registerSession(t, router)
		cookie, _ := csrfToken(t, router)

		rec := doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil,
			append(session, cookie), nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Run("returns the fresh profile", func(t *testing.T) {
		router := newTestRouter(t)
		session := registerSession(t, router)

		rec := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, session, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[meResponse](t, rec)
		require.Equal(t, "ada@example.com", body.User.Email)
		require.Equal(t, "en-US", body.User.Locale)
	})

	t.Run("no session answers 401", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
