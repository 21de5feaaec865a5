package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
	Cookies     cookiePolicy
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	CaptchaToken    string `json:"recaptchaToken"`
	Locale          string `json:"locale"`
}

// ServeHTTP handles account creation.
//
//	@Summary		Register a new account
//	@Description	Validates the payload and captcha, creates the user and logs them in
//	@Description	immediately by setting the session cookies.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"registration payload"
//	@Success		201		{object}	SessionResponse	"account created, session established"
//	@Failure		400		{object}	ErrorResponse	"validation or captcha failure"
//	@Failure		409		{object}	ErrorResponse	"email already registered"
//	@Failure		429		{object}	ErrorResponse	"rate limited"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, pair, err := h.AuthService.Register(ctx, service.RegisterParams{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		CaptchaToken:    req.CaptchaToken,
		Locale:          domain.Locale(req.Locale),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("registration succeeded", "user_id", user.ID)

	h.Cookies.setSession(w, pair)
	h.Cookies.setLocale(w, user.Locale)

	httpx.WriteJSON(w, http.StatusCreated, SessionResponse{
		Success: true,
		Message: "registration successful",
		User: UserPayload{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Locale: string(user.Locale),
		},
	})
}
