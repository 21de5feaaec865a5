package httpx

import (
	"crypto/subtle"
	"net/http"
)

const (
	// CSRFCookie is the httpOnly cookie holding the CSRF token.
	CSRFCookie = "csrf_token"
	// CSRFHeader is the request header clients must echo the token in.
	CSRFHeader = "X-CSRF-Token"
)

// CSRFMiddleware enforces the double-submit check on state-changing
// methods: the token sent in the CSRF header must match the one in the
// httpOnly cookie. Safe methods pass through untouched.
func CSRFMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !validCSRF(r) {
				WriteError(w, http.StatusForbidden, "invalid or missing CSRF token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validCSRF(r *http.Request) bool {
	cookie, err := r.Cookie(CSRFCookie)
	if err != nil || cookie.Value == "" {
		return false
	}

	header := r.Header.Get(CSRFHeader)
	if header == "" {
		return false
	}

	// ConstantTimeCompare already returns 0 on length mismatch.
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) == 1
}
