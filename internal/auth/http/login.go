package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Cookies     cookiePolicy
}

type loginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaToken string `json:"recaptchaToken"`
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and the captcha token, then establishes a session
//	@Description	via httpOnly cookies. The tokens never appear in the response body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"credentials"
//	@Success		200		{object}	SessionResponse	"session established"
//	@Failure		400		{object}	ErrorResponse	"validation or captcha failure"
//	@Failure		401		{object}	ErrorResponse	"incorrect email or password"
//	@Failure		429		{object}	ErrorResponse	"rate limited"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, pair, err := h.AuthService.Login(ctx, service.LoginParams{
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.CaptchaToken,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("login succeeded", "user_id", user.ID)

	h.Cookies.setSession(w, pair)
	h.Cookies.setLocale(w, user.Locale)

	httpx.WriteJSON(w, http.StatusOK, SessionResponse{
		Success: true,
		Message: "login successful",
		User: UserPayload{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Theme:  string(user.Theme),
			Locale: string(user.Locale),
		},
	})
}
