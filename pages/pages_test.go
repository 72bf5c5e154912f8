// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/polls/models"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Len(t, r.pages, 3)
}

func TestRenderIndex(t *testing.T) {
	r := MustNewRenderer()
	now := time.Now()

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, Index, IndexData{
		Questions: []models.Question{
			{ID: 7, QuestionText: "What's new?", PubDate: now.Add(-time.Hour)},
			{ID: 3, QuestionText: "Old news?", PubDate: now.Add(-72 * time.Hour)},
		},
		Now: now,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `<a href="/polls/7">What&#39;s new?</a>`)
	assert.Contains(t, body, `<a href="/polls/3">Old news?</a>`)
	assert.Contains(t, body, "1 hour ago")
	assert.Contains(t, body, "3 days ago")
	assert.Contains(t, body, "<strong>new</strong>")
}

func TestRenderIndex_Empty(t *testing.T) {
	r := MustNewRenderer()

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, Index, IndexData{Now: time.Now()})

	assert.Contains(t, w.Body.String(), "No polls are available.")
}

func TestRenderDetail(t *testing.T) {
	r := MustNewRenderer()

	data := DetailData{
		QuestionWithChoices: models.QuestionWithChoices{
			Question: models.Question{ID: 2, QuestionText: "Color?"},
			Choices: []models.Choice{
				{ID: 7, ChoiceText: "Red"},
				{ID: 8, ChoiceText: "<Blue>"},
			},
		},
		ErrorMessage: models.NoChoiceMessage,
	}

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, Detail, data)

	body := w.Body.String()
	assert.Contains(t, body, `<title>Color?</title>`)
	assert.Contains(t, body, `action="/polls/2/vote"`)
	assert.Contains(t, body, `value="7"`)
	assert.Contains(t, body, "&lt;Blue&gt;")
	assert.Contains(t, body, "You didn&#39;t select a choice.")
}

func TestRenderResults(t *testing.T) {
	r := MustNewRenderer()

	data := ResultsData{models.QuestionWithChoices{
		Question: models.Question{ID: 2, QuestionText: "Color?"},
		Choices: []models.Choice{
			{ID: 7, ChoiceText: "Red", Votes: 1},
			{ID: 8, ChoiceText: "Blue", Votes: 1500},
		},
	}}

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, Results, data)

	body := w.Body.String()
	assert.Contains(t, body, "Red -- 1 vote</li>")
	assert.Contains(t, body, "Blue -- 1,500 votes</li>")
	assert.Contains(t, body, "1,501 votes in total")
	assert.Contains(t, body, `href="/polls/2"`)
}

func TestRender_UnknownPage(t *testing.T) {
	r := MustNewRenderer()

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "missing", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
