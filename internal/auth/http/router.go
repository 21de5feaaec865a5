package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/internal/auth/store"
	"github.com/cursoteca/cursoteca/pkg/httpx"
	"github.com/cursoteca/cursoteca/pkg/ratelimit"
	"github.com/cursoteca/cursoteca/pkg/slogx"

	_ "github.com/cursoteca/cursoteca/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.TokenVerifier
	limits       ratelimit.Store
	cookies      cookiePolicy
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	UserService       *service.UserService
	SuggestionService *service.SuggestionService
	ReportService     *service.ReportService
}

func NewRouter(
	verifier httpx.TokenVerifier,
	limits ratelimit.Store,
	buildVersion string,
	secureCookies bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		limits:       limits,
		cookies:      cookiePolicy{Secure: secureCookies},
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPreferences()
	r.registerSuggestions()
	r.registerProblems()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cursoteca Auth API
//	@version		0.1.0
//	@description	Authentication and session security service for the Cursoteca course
//	@description	catalog. Sessions ride in httpOnly cookies: a short-lived access token,
//	@description	a rotating refresh token and a CSRF double-submit token.
//
//	@contact.name	Cursoteca Team
//	@contact.url	https://github.com/cursoteca/cursoteca
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService, Cookies: r.cookies}
	register := &RegisterHandler{AuthService: r.AuthService, Cookies: r.cookies}
	refresh := &RefreshHandler{AuthService: r.AuthService, Cookies: r.cookies}
	logout := &LogoutHandler{Cookies: r.cookies}
	me := &MeHandler{UserService: r.UserService}
	csrf := &CSRFHandler{Cookies: r.cookies}

	// Credential endpoints are rate limited by caller IP before anything
	// else runs.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByClient(r.limits, httpx.LoginLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(register,
			httpx.RateLimitByClient(r.limits, httpx.RegisterLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refresh,
			httpx.RateLimitByClient(r.limits, httpx.RefreshLimit),
		),
	)

	// Logout changes state via cookies, so it carries the CSRF check.
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logout,
			httpx.CSRFMiddleware(),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier, AuthCookie),
		),
	)

	r.Mux.Handle("GET /v1/auth/csrf", csrf)
}

func (r *Router) registerPreferences() {
	theme := &ThemeHandler{UserService: r.UserService}
	locale := &LocaleHandler{UserService: r.UserService, Cookies: r.cookies}

	r.Mux.Handle("POST /v1/auth/theme",
		httpx.Chain(theme,
			httpx.CSRFMiddleware(),
			httpx.AuthnMiddleware(r.verifier, AuthCookie),
		),
	)

	r.Mux.Handle("POST /v1/auth/locale",
		httpx.Chain(locale,
			httpx.AuthnMiddleware(r.verifier, AuthCookie),
		),
	)
}

func (r *Router) registerSuggestions() {
	h := &SuggestionsHandler{SuggestionService: r.SuggestionService}

	r.Mux.Handle("POST /v1/suggestions",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier, AuthCookie),
			httpx.RateLimitByClient(r.limits, httpx.SuggestionLimit),
		),
	)

	r.Mux.Handle("GET /v1/suggestions", http.HandlerFunc(h.HandleList))
}

func (r *Router) registerProblems() {
	h := &ProblemsHandler{ReportService: r.ReportService}

	r.Mux.Handle("POST /v1/courses/{slug}/problems",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier, AuthCookie),
			httpx.RateLimitByClient(r.limits, httpx.ProblemLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
