package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cursoteca/cursoteca/pkg/slogx"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies tokens against Google's siteverify endpoint.
type Recaptcha struct {
	secret    string
	verifyURL string
	client    *http.Client

	// limiter caps outbound siteverify calls so a flood of bogus
	// tokens cannot turn us into a reCAPTCHA amplifier.
	limiter *rate.Limiter
}

// RecaptchaOption customises a Recaptcha verifier.
type RecaptchaOption func(*Recaptcha)

// WithVerifyURL points the verifier at an alternate endpoint. Used in
// tests with httptest servers.
func WithVerifyURL(u string) RecaptchaOption {
	return func(r *Recaptcha) { r.verifyURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) RecaptchaOption {
	return func(r *Recaptcha) { r.client = c }
}

// NewRecaptcha builds a verifier for the given shared secret. An empty
// secret yields a verifier that rejects everything, which keeps
// misconfigured deployments closed rather than open.
func NewRecaptcha(secret string, opts ...RecaptchaOption) *Recaptcha {
	r := &Recaptcha{
		secret:    secret,
		verifyURL: defaultVerifyURL,
		client:    &http.Client{Timeout: 5 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(50), 100),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify implements Verifier.
func (r *Recaptcha) Verify(ctx context.Context, token string) bool {
	log := slogx.FromContext(ctx)

	if r.secret == "" {
		log.Error("captcha secret not configured, rejecting token")
		return false
	}
	if token == "" {
		return false
	}

	if !r.limiter.Allow() {
		log.Warn("captcha verification rate exceeded, rejecting token")
		return false
	}

	form := url.Values{
		"secret":   {r.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("captcha request build failed", "err", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error("captcha verification request failed", "err", err)
		return false
	}
	defer resp.Body.Close()

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Error("captcha response decode failed", "err", err)
		return false
	}

	if !body.Success {
		log.Warn("captcha token rejected", "error_codes", body.ErrorCodes)
	}
	return body.Success
}
