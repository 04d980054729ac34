package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/auf-analytics/internal/api/respond"
)

// QueryRequest is a free-text question about a period.
type QueryRequest struct {
	Question string `json:"question" example:"¿Quién es el goleador?"`
	Season   int    `json:"season"`
	Stage    string `json:"stage"`
}

// PostQuery answers a free-text question.
// @Summary Free-text question
// @Description Classifies a question (comparison, team status, top scorer, table) and answers it in plain text. Questions that match no rule get a clarification text, not an error.
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Question and period"
// @Success 200 {object} query.Answer
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /query [post]
func (h *Handler) PostQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_QUESTION", "question is required")
		return
	}
	p, perr := h.resolvePeriod(req.Season, req.Stage)
	if perr != nil {
		perr.write(w)
		return
	}

	ans, err := h.router.Answer(r.Context(), req.Question, p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, ans)
}
