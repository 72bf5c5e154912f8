// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

// ChoiceDataHandler serves the JSON choice endpoints of a question.
type ChoiceDataHandler struct {
	store *store.Store
}

func NewChoiceDataHandler(db *sql.DB) *ChoiceDataHandler {
	return &ChoiceDataHandler{store: store.New(db)}
}

// ListChoices handles GET /api/questions/{id}/choices
// An unknown question is not translated to 404 here: the lookup failure
// surfaces as a 500 like any other database error.
func (h *ChoiceDataHandler) ListChoices(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.Question(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load question")
		return
	}

	choices, err := h.store.Choices(r.Context(), question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	objects := make([]models.ChoiceSummary, 0, len(choices))
	for _, c := range choices {
		objects = append(objects, models.ChoiceSummary{Text: c.ChoiceText, Votes: c.Votes, ID: c.ID})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChoiceListResponse{
		Objects:  objects,
		Question: question.QuestionText,
	})
}

// VoteChoice handles POST /api/questions/{id}/choices
// A missing or unknown choice_id is ignored; the acknowledgement is the same either way.
func (h *ChoiceDataHandler) VoteChoice(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	questionID, ok := pathQuestionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.Question(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if choiceID, err := req.ChoiceID.Int64(); err == nil {
		err = h.store.Vote(r.Context(), question.ID, choiceID)
		switch {
		case err == nil:
			slog.Info("vote recorded", "question_id", question.ID, "choice_id", choiceID)
		case errors.Is(err, store.ErrChoiceNotFound):
			slog.Debug("vote ignored", "question_id", question.ID, "choice_id", choiceID)
		default:
			slog.Error("failed to record vote", "error", err, "question_id", question.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.Ack{Objects: 0})
}
