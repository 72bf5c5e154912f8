// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

// QuestionDataHandler serves the JSON question endpoints.
type QuestionDataHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewQuestionDataHandler(db *sql.DB) *QuestionDataHandler {
	return &QuestionDataHandler{store: store.New(db), now: time.Now}
}

// CreateQuestion handles POST /api/questions
func (h *QuestionDataHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	choiceTexts := make([]string, 0, len(req.Choices))
	for _, c := range req.Choices {
		choiceTexts = append(choiceTexts, c.Choice)
	}

	questionID, err := h.store.CreateQuestion(r.Context(), req.Question, h.now(), choiceTexts)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "choices", len(choiceTexts))

	middleware.JSONResponse(w, http.StatusOK, models.Ack{Objects: 0})
}

// ListQuestions handles GET /api/questions
// Returns every question, newest first, including ones not yet published
func (h *QuestionDataHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.Questions(r.Context())
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	objects := make([]models.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		objects = append(objects, models.QuestionSummary{Text: q.QuestionText, ID: q.ID})
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{Objects: objects})
}
