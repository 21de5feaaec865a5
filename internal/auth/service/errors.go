package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrEmailTaken         = errors.New("email_taken")
	ErrCaptchaRequired    = errors.New("captcha_required")
	ErrCaptchaFailed      = errors.New("captcha_failed")
	ErrUserNotFound       = errors.New("user_not_found")
)

// ValidationError carries a field-level message suitable for the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }
