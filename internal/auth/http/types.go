package http

// UserPayload is the user shape returned by session endpoints.
type UserPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Theme  string `json:"theme,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// SessionResponse is returned by login, register and refresh.
type SessionResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// MessageResponse is a success envelope without a user payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreatedResponse is returned when a submission is stored.
type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CSRFResponse carries a freshly minted CSRF token.
type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// HealthChecks reports per-dependency health in readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
