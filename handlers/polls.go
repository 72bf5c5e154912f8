// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/pages"
	"github.com/danielhkuo/polls/store"
)

// PollHandler serves the HTML pages: listing, detail, results and the vote form post.
type PollHandler struct {
	store *store.Store
	pages *pages.Renderer
	now   func() time.Time
}

func NewPollHandler(db *sql.DB, renderer *pages.Renderer) *PollHandler {
	return &PollHandler{store: store.New(db), pages: renderer, now: time.Now}
}

// pathQuestionID parses the {id} path segment. Anything but an integer
// is treated like an unknown question.
func pathQuestionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func internalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Index handles GET /polls
// Lists the five most recently published questions; future questions are hidden
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.store.LatestPublished(r.Context(), now, models.LatestLimit)
	if err != nil {
		slog.Error("failed to query latest questions", "error", err)
		internalError(w)
		return
	}

	h.pages.Render(w, http.StatusOK, pages.Index, pages.IndexData{
		Questions: questions,
		Now:       now,
	})
}

// Detail handles GET /polls/{id}
// Shows the vote form for a published question, 404 otherwise
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathQuestionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	question, err := h.store.PublishedQuestion(r.Context(), questionID, h.now())
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

	h.pages.Render(w, http.StatusOK, pages.Detail, pages.DetailData{QuestionWithChoices: full})
}
