package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type ThemeHandler struct {
	UserService *service.UserService
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Message string `json:"message"`
	Theme   string `json:"theme"`
}

// ServeHTTP stores the user's theme preference.
//
//	@Summary		Update theme preference
//	@Description	Persists the theme (light, dark or system) for the authenticated user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		themeRequest	true	"theme"
//	@Success		200		{object}	themeResponse	"theme updated"
//	@Failure		400		{object}	ErrorResponse	"unknown theme"
//	@Failure		401		{object}	ErrorResponse	"not authenticated"
//	@Failure		403		{object}	ErrorResponse	"CSRF check failed"
//	@Router			/v1/auth/theme [post].
func (h *ThemeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req themeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.UserService.UpdateTheme(ctx, id.UserID, domain.Theme(req.Theme)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, themeResponse{
		Message: "theme updated",
		Theme:   req.Theme,
	})
}
