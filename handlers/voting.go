// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/pages"
	"github.com/danielhkuo/polls/store"
)

// ResultsPath is where a successful vote redirects to
func ResultsPath(questionID int64) string {
	return fmt.Sprintf("/polls/%d/results", questionID)
}

// Vote handles POST /polls/{id}/vote
// Form field "choice" holds the choice ID. A missing or foreign choice
// redisplays the form with an error; a vote redirects to the results page.
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
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

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err == nil {
		err = h.store.Vote(r.Context(), question.ID, choiceID)
		if err == nil {
			slog.Info("vote recorded", "question_id", question.ID, "choice_id", choiceID)

			// 303 so that reloading the results page never resubmits the vote
			http.Redirect(w, r, ResultsPath(question.ID), http.StatusSeeOther)
			return
		}
		if !errors.Is(err, store.ErrChoiceNotFound) {
			slog.Error("failed to record vote", "error", err, "question_id", question.ID)
			internalError(w)
			return
		}
	}

	// Redisplay the voting form
	full, err := h.store.WithChoices(r.Context(), question)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", question.ID)
		internalError(w)
		return
	}

	h.pages.Render(w, http.StatusOK, pages.Detail, pages.DetailData{
		QuestionWithChoices: full,
		ErrorMessage:        models.NoChoiceMessage,
	})
}
