package http

import (
	"net/http"
	"time"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type SuggestionsHandler struct {
	SuggestionService *service.SuggestionService
}

type suggestionRequest struct {
	Title        string `json:"title"`
	CourseURL    string `json:"courseUrl"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	CaptchaToken string `json:"recaptchaToken"`
}

type suggestionPayload struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	CourseURL   string    `json:"courseUrl"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type suggestionListResponse struct {
	Suggestions []suggestionPayload `json:"suggestions"`
}

// HandleCreate stores a course suggestion.
//
//	@Summary		Suggest a course
//	@Description	Records a YouTube course suggestion from an authenticated user.
//	@Tags			Suggestions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		suggestionRequest	true	"suggestion"
//	@Success		201		{object}	CreatedResponse		"suggestion stored"
//	@Failure		400		{object}	ErrorResponse		"validation or captcha failure"
//	@Failure		401		{object}	ErrorResponse		"not authenticated"
//	@Failure		429		{object}	ErrorResponse		"rate limited"
//	@Router			/v1/suggestions [post].
func (h *SuggestionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req suggestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	suggestion, err := h.SuggestionService.Create(ctx, service.SuggestionParams{
		UserID:       id.UserID,
		Title:        req.Title,
		CourseURL:    req.CourseURL,
		Category:     req.Category,
		Description:  req.Description,
		CaptchaToken: req.CaptchaToken,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		Message: "suggestion received",
		ID:      suggestion.ID,
	})
}

// HandleList returns all suggestions, newest first.
//
//	@Summary		List course suggestions
//	@Tags			Suggestions
//	@Produce		json
//	@Success		200	{object}	suggestionListResponse	"suggestions, newest first"
//	@Failure		500	{object}	ErrorResponse			"internal server error"
//	@Router			/v1/suggestions [get].
func (h *SuggestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suggestions, err := h.SuggestionService.List(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	payload := make([]suggestionPayload, 0, len(suggestions))
	for _, s := range suggestions {
		payload = append(payload, suggestionPayload{
			ID:          s.ID,
			UserID:      s.UserID,
			Title:       s.Title,
			CourseURL:   s.CourseURL,
			Category:    s.Category,
			Description: s.Description,
			CreatedAt:   s.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, suggestionListResponse{Suggestions: payload})
}
