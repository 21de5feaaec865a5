package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

type meResponse struct {
	User UserPayload `json:"user"`
}

// ServeHTTP returns the authenticated user's profile.
//
//	@Summary		Get the current user
//	@Description	Returns the profile of the user identified by the access-token cookie,
//	@Description	read fresh from the store so preference changes show up immediately.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	meResponse		"current user"
//	@Failure		401	{object}	ErrorResponse	"not authenticated"
//	@Failure		404	{object}	ErrorResponse	"user no longer exists"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.UserService.GetUserByID(ctx, id.UserID)
	if err != nil {
		log.Warn("failed to load user", "user_id", id.UserID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, meResponse{
		User: UserPayload{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Theme:  string(user.Theme),
			Locale: string(user.Locale),
		},
	})
}
