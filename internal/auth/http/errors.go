package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

// writeServiceError maps service-layer errors onto the HTTP error
// taxonomy. Anything unrecognised becomes a generic 500 with the
// detail kept in the logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrCaptchaRequired):
		httpx.WriteError(w, http.StatusBadRequest, "captcha token is required")
	case errors.Is(err, service.ErrCaptchaFailed):
		httpx.WriteError(w, http.StatusBadRequest, "captcha verification failed")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "incorrect email or password")
	case errors.Is(err, service.ErrInvalidRefresh):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid or expired refresh token")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user not found")
	default:
		log.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// maxBodyBytes bounds request bodies; none of the accepted payloads
// come anywhere near it.
const maxBodyBytes = 64 << 10

// decodeJSON parses a request body, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
