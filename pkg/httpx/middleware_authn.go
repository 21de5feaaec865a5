package httpx

import (
	"context"
	"net/http"

	"github.com/cursoteca/cursoteca/pkg/jwtx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

// TokenVerifier verifies a signed token of the given kind and returns
// the identity it carries. Satisfied by *jwtx.Codec.
type TokenVerifier interface {
	Verify(token string, kind jwtx.Kind) (jwtx.Identity, error)
}

// AuthnMiddleware authenticates requests from the access-token cookie.
// Every failure mode answers the same 401 so callers cannot probe
// whether a cookie was absent, expired or forged.
func AuthnMiddleware(v TokenVerifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeAuthnError(w)
				return
			}

			id, err := v.Verify(cookie.Value, jwtx.KindAccess)
			if err != nil {
				log.Warn("access token verification failed", "err", err)
				writeAuthnError(w)
				return
			}

			ctx = contextWithIdentity(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithIdentity(ctx context.Context, id jwtx.Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	ctx = context.WithValue(ctx, CtxKeyIdentity, id)
	return ctx
}

func writeAuthnError(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "not authenticated")
}
