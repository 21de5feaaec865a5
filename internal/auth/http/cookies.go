package http

import (
	"net/http"
	"time"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

const (
	// AuthCookie holds the short-lived access token.
	AuthCookie = "auth_token"
	// RefreshCookie holds the long-lived refresh token.
	RefreshCookie = "refresh_token"
	// LocaleCookie mirrors the user's locale preference for the frontend.
	LocaleCookie = "NEXT_LOCALE"

	csrfCookieTTL   = 24 * time.Hour
	localeCookieTTL = 365 * 24 * time.Hour
)

// cookiePolicy centralises the attributes every session cookie gets.
// All cookies are httpOnly and SameSite=Strict; Secure is disabled only
// for local plain-HTTP development.
type cookiePolicy struct {
	Secure bool
}

func (p cookiePolicy) set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (p cookiePolicy) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// setSession writes the access and refresh token cookies. The TTLs come
// from the pair itself so the cookies expire exactly when the tokens do,
// even with overridden token lifetimes.
func (p cookiePolicy) setSession(w http.ResponseWriter, pair service.TokenPair) {
	p.set(w, AuthCookie, pair.Access, pair.AccessTTL)
	p.set(w, RefreshCookie, pair.Refresh, pair.RefreshTTL)
}

func (p cookiePolicy) setCSRF(w http.ResponseWriter, token string) {
	p.set(w, httpx.CSRFCookie, token, csrfCookieTTL)
}

func (p cookiePolicy) setLocale(w http.ResponseWriter, locale domain.Locale) {
	p.set(w, LocaleCookie, string(locale), localeCookieTTL)
}

// clearSession drops every session-scoped cookie.
func (p cookiePolicy) clearSession(w http.ResponseWriter) {
	p.clear(w, AuthCookie)
	p.clear(w, RefreshCookie)
	p.clear(w, httpx.CSRFCookie)
}
