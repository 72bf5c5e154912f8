// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

func TestVote(t *testing.T) {
	handler, db := newTestPollHandler(t)

	questionID := testutil.CreateTestQuestion(t, db, "Color?", time.Now().Add(-time.Hour))
	red := testutil.AddTestChoice(t, db, questionID, "Red", 3)
	blue := testutil.AddTestChoice(t, db, questionID, "Blue", 5)

	otherID := testutil.CreateTestQuestion(t, db, "Shape?", time.Now().Add(-time.Hour))
	square := testutil.AddTestChoice(t, db, otherID, "Square", 0)

	tests := []struct {
		name           string
		questionID     string
		form           url.Values
		expectedStatus int
		expectVote     bool
		expectError    bool
	}{
		{
			name:           "valid choice",
			questionID:     idString(questionID),
			form:           url.Values{"choice": {idString(red)}},
			expectedStatus: http.StatusSeeOther,
			expectVote:     true,
		},
		{
			name:           "missing choice",
			questionID:     idString(questionID),
			form:           url.Values{},
			expectedStatus: http.StatusOK,
			expectError:    true,
		},
		{
			name:           "empty choice",
			questionID:     idString(questionID),
			form:           url.Values{"choice": {""}},
			expectedStatus: http.StatusOK,
			expectError:    true,
		},
		{
			name:           "non-numeric choice",
			questionID:     idString(questionID),
			form:           url.Values{"choice": {"red"}},
			expectedStatus: http.StatusOK,
			expectError:    true,
		},
		{
			name:           "unknown choice",
			questionID:     idString(questionID),
			form:           url.Values{"choice": {"99999"}},
			expectedStatus: http.StatusOK,
			expectError:    true,
		},
		{
			name:           "choice of another question",
			questionID:     idString(questionID),
			form:           url.Values{"choice": {idString(square)}},
			expectedStatus: http.StatusOK,
			expectError:    true,
		},
		{
			name:           "unknown question",
			questionID:     "99999",
			form:           url.Values{"choice": {idString(red)}},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redBefore := testutil.GetVotes(t, db, red)
			blueBefore := testutil.GetVotes(t, db, blue)
			squareBefore := testutil.GetVotes(t, db, square)

			req := testutil.MakeFormRequest("/polls/"+tt.questionID+"/vote", tt.form)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectVote {
				assert.Equal(t, ResultsPath(questionID), w.Header().Get("Location"))
				assert.Equal(t, redBefore+1, testutil.GetVotes(t, db, red))
			} else {
				assert.Equal(t, redBefore, testutil.GetVotes(t, db, red))
			}

			// Other choices are never touched
			assert.Equal(t, blueBefore, testutil.GetVotes(t, db, blue))
			assert.Equal(t, squareBefore, testutil.GetVotes(t, db, square))

			if tt.expectError {
				body := w.Body.String()
				assert.Contains(t, body, "You didn&#39;t select a choice.")
				assert.Contains(t, body, "Color?")
				assert.Contains(t, body, `action="/polls/`+idString(questionID)+`/vote"`)
			}
		})
	}
}

// Voting is not gated on pub_date, only the detail page is
func TestVote_FutureQuestion(t *testing.T) {
	handler, db := newTestPollHandler(t)

	questionID := testutil.CreateTestQuestion(t, db, "", time.Now().Add(time.Hour))
	choiceID := testutil.AddTestChoice(t, db, questionID, "", 0)

	req := testutil.MakeFormRequest("/polls/"+idString(questionID)+"/vote", url.Values{"choice": {idString(choiceID)}})
	req.SetPathValue("id", idString(questionID))
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.EqualValues(t, 1, testutil.GetVotes(t, db, choiceID))
}

func TestVote_ErrorMessageConstant(t *testing.T) {
	assert.Equal(t, "You didn't select a choice.", models.NoChoiceMessage)
}
