package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type LocaleHandler struct {
	UserService *service.UserService
	Cookies     cookiePolicy
}

type localeRequest struct {
	Locale string `json:"locale"`
}

// ServeHTTP stores the user's locale preference and refreshes the
// locale cookie the frontend renders from.
//
//	@Summary		Update locale preference
//	@Description	Persists the locale (pt-BR, en-US or es-ES) for the authenticated user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		localeRequest	true	"locale"
//	@Success		200		{object}	MessageResponse	"locale updated"
//	@Failure		400		{object}	ErrorResponse	"unknown locale"
//	@Failure		401		{object}	ErrorResponse	"not authenticated"
//	@Router			/v1/auth/locale [post].
func (h *LocaleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req localeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	locale := domain.Locale(req.Locale)
	if err := h.UserService.UpdateLocale(ctx, id.UserID, locale); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Cookies.setLocale(w, locale)
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "locale updated"})
}
