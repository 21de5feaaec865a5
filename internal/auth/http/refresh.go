package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
	Cookies     cookiePolicy
}

// ServeHTTP rotates the session token pair.
//
//	@Summary		Refresh the session
//	@Description	Verifies the refresh-token cookie, re-reads the user and rotates both
//	@Description	cookies. A missing, expired or forged token answers a uniform 401.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	SessionResponse	"tokens rotated"
//	@Failure		401	{object}	ErrorResponse	"invalid or expired refresh token"
//	@Failure		429	{object}	ErrorResponse	"rate limited"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var token string
	if cookie, err := r.Cookie(RefreshCookie); err == nil {
		token = cookie.Value
	}

	user, pair, err := h.AuthService.Refresh(ctx, token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.setSession(w, pair)

	httpx.WriteJSON(w, http.StatusOK, SessionResponse{
		Success: true,
		Message: "tokens refreshed",
		User: UserPayload{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
