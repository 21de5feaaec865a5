package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursoteca/cursoteca/pkg/jwtx"
)

const authCookie = "auth_token"

func authnHandler(codec *jwtx.Codec) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, found := IdentityFromContext(r.Context())
		if !found {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"user_id": id.UserID})
	})
	return Chain(ok, AuthnMiddleware(codec, authCookie))
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	codec := jwtx.NewCodec("authn-test-secret", "", "cursoteca-auth")
	identity := jwtx.Identity{UserID: "u_1", Email: "ada@example.com", Name: "Ada"}

	t.Run("valid access cookie reaches the handler", func(t *testing.T) {
		token, err := codec.Mint(identity, jwtx.KindAccess)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: authCookie, Value: token})
		rec := httptest.NewRecorder()

		authnHandler(codec).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "u_1")
	})

	t.Run("missing cookie yields uniform 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		rec := httptest.NewRecorder()

		authnHandler(codec).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "not authenticated")
	})

	t.Run("garbage cookie yields the same 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: authCookie, Value: "not.a.jwt"})
		rec := httptest.NewRecorder()

		authnHandler(codec).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "not authenticated")
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		token, err := codec.Mint(identity, jwtx.KindRefresh)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: authCookie, Value: token})
		rec := httptest.NewRecorder()

		authnHandler(codec).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
