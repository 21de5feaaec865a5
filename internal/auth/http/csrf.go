package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/pkg/cryptox"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type CSRFHandler struct {
	Cookies cookiePolicy
}

// ServeHTTP mints a CSRF token for the double-submit check. The token
// is set as an httpOnly cookie and echoed in the body so the frontend
// can replay it in the CSRF header.
//
//	@Summary		Issue a CSRF token
//	@Description	Returns a fresh CSRF token and sets the matching httpOnly cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	CSRFResponse	"token issued"
//	@Failure		500	{object}	ErrorResponse	"token generation failed"
//	@Router			/v1/auth/csrf [get].
func (h *CSRFHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.setCSRF(w, token)
	httpx.WriteJSON(w, http.StatusOK, CSRFResponse{CSRFToken: token})
}
