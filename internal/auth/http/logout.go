package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type LogoutHandler struct {
	Cookies cookiePolicy
}

// ServeHTTP ends the session by clearing every session cookie. It is
// idempotent: logging out without a session still succeeds.
//
//	@Summary		Log out
//	@Description	Clears the access, refresh and CSRF cookies. Protected by the CSRF
//	@Description	double-submit check.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	MessageResponse	"session cleared"
//	@Failure		403	{object}	ErrorResponse	"CSRF check failed"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Cookies.clearSession(w)

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "logout successful",
	})
}
