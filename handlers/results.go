// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/pages"
	"github.com/danielhkuo/polls/store"
)

// Results handles GET /polls/{id}/results
// Unlike Detail, no pub_date filter applies: results of future questions are visible
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	question, err := h.store.Question(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		internalError(w)
		return
	}

	full, err := h.store.WithChoices(r.Context(), question)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", questionID)
		internalError(w)
		return
	}

	h.pages.Render(w, http.StatusOK, pages.Results, pages.ResultsData{QuestionWithChoices: full})
}
