package http

import (
	"net/http"

	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/pkg/httpx"
)

type ProblemsHandler struct {
	ReportService *service.ReportService
}

type problemRequest struct {
	CourseID     string `json:"courseId"`
	Description  string `json:"description"`
	CaptchaToken string `json:"recaptchaToken"`
}

// HandleCreate files a problem report against the course in the path.
//
//	@Summary		Report a course problem
//	@Description	Records a problem report for the course identified by its slug.
//	@Tags			Problems
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string			true	"course slug"
//	@Param			request	body		problemRequest	true	"problem report"
//	@Success		201		{object}	CreatedResponse	"report stored"
//	@Failure		400		{object}	ErrorResponse	"validation or captcha failure"
//	@Failure		401		{object}	ErrorResponse	"not authenticated"
//	@Failure		429		{object}	ErrorResponse	"rate limited"
//	@Router			/v1/courses/{slug}/problems [post].
func (h *ProblemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req problemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.ReportService.Create(ctx, service.ReportParams{
		UserID:       id.UserID,
		CourseID:     req.CourseID,
		CourseSlug:   r.PathValue("slug"),
		Description:  req.Description,
		CaptchaToken: req.CaptchaToken,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		Message: "problem reported, thanks for the feedback",
		ID:      report.ID,
	})
}
