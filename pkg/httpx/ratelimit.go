package httpx

import (
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cursoteca/cursoteca/pkg/ratelimit"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

// RateLimitConfig defines a fixed-window budget for one class of
// endpoints. Prefix namespaces the counter keys so different classes
// never share a window.
type RateLimitConfig struct {
	// Requests allowed per window.
	Requests int64
	// Window is the fixed window length.
	Window time.Duration
	// Prefix namespaces counter keys, e.g. "login".
	Prefix string
}

// Per-endpoint rate limit profiles.
// These can be overridden via environment variables (see init() below).
var (
	// LoginLimit guards credential guessing on the login endpoint.
	// Override with: RATELIMIT_LOGIN_REQUESTS, RATELIMIT_LOGIN_WINDOW_SEC
	LoginLimit = RateLimitConfig{Requests: 5, Window: time.Minute, Prefix: "login"}

	// RegisterLimit slows bulk account creation.
	// Override with: RATELIMIT_REGISTER_REQUESTS, RATELIMIT_REGISTER_WINDOW_SEC
	RegisterLimit = RateLimitConfig{Requests: 3, Window: time.Hour, Prefix: "register"}

	// SuggestionLimit bounds course-suggestion submissions.
	// Override with: RATELIMIT_SUGGESTION_REQUESTS, RATELIMIT_SUGGESTION_WINDOW_SEC
	SuggestionLimit = RateLimitConfig{Requests: 5, Window: time.Hour, Prefix: "suggestion"}

	// ProblemLimit bounds problem reports per course.
	// Override with: RATELIMIT_PROBLEM_REQUESTS, RATELIMIT_PROBLEM_WINDOW_SEC
	ProblemLimit = RateLimitConfig{Requests: 10, Window: time.Hour, Prefix: "problem"}

	// RefreshLimit guards token-refresh churn.
	// Override with: RATELIMIT_REFRESH_REQUESTS, RATELIMIT_REFRESH_WINDOW_SEC
	RefreshLimit = RateLimitConfig{Requests: 10, Window: time.Minute, Prefix: "refresh"}
)

func init() {
	// Allow overriding rate limits via environment variables (useful for testing)
	LoginLimit = ParseRateLimitFromEnv("LOGIN", LoginLimit)
	RegisterLimit = ParseRateLimitFromEnv("REGISTER", RegisterLimit)
	SuggestionLimit = ParseRateLimitFromEnv("SUGGESTION", SuggestionLimit)
	ProblemLimit = ParseRateLimitFromEnv("PROBLEM", ProblemLimit)
	RefreshLimit = ParseRateLimitFromEnv("REFRESH", RefreshLimit)
}

// ParseRateLimitFromEnv reads rate limit configuration from environment
// variables following the pattern RATELIMIT_{prefix}_{field}, e.g.
// RATELIMIT_LOGIN_REQUESTS and RATELIMIT_LOGIN_WINDOW_SEC.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if requests, err := strconv.ParseInt(val, 10, 64); err == nil && requests > 0 {
			config.Requests = requests
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	return config
}

// KeyExtractor derives the identity a request is counted under.
type KeyExtractor func(*http.Request) string

// ClientKeyExtractor identifies the caller. It prefers the
// X-Forwarded-For chain (first hop), then X-Real-IP, then the request
// host as a last resort.
func ClientKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if r.Host != "" {
		return r.Host
	}
	return "unknown"
}

// RateLimitMiddleware enforces a fixed-window budget per extracted key.
// A store failure fails open: denying every login because the counter
// backend is down hurts more than briefly losing the limiter.
func RateLimitMiddleware(store ratelimit.Store, config RateLimitConfig, key KeyExtractor) Middleware {
	lim := ratelimit.Limit{Requests: config.Requests, Window: config.Window}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			k := config.Prefix + ":" + key(r)

			res, err := ratelimit.Consume(ctx, store, k, lim)
			if err != nil {
				log.Warn("rate limit store unavailable, allowing request", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if !res.Allowed {
				retryAfter := int(math.Ceil(time.Until(res.Reset).Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

				log.Warn("rate limit exceeded",
					"key", k,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteJSON(w, http.StatusTooManyRequests, map[string]any{
					"error":      "Too many requests. Please try again later.",
					"retryAfter": retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByClient counts requests per caller IP under the config's prefix.
func RateLimitByClient(store ratelimit.Store, config RateLimitConfig) Middleware {
	return RateLimitMiddleware(store, config, ClientKeyExtractor)
}
