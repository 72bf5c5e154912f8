// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls server.

# Handler Types

Each handler is a struct over a store.Store:

  - PollHandler: HTML listing, detail, results and the vote form post
  - QuestionDataHandler: JSON question list and creation
  - ChoiceDataHandler: JSON choice list and votes

Handlers are created via constructor functions that accept *sql.DB:

	pollHandler := handlers.NewPollHandler(db, pages.MustNewRenderer())

# Publication

A question is visible on the listing and detail pages once its pub_date
has passed. The results page, the vote post and the JSON endpoints do not
filter on pub_date.

# Voting

	POST /polls/{id}/vote              → Vote (form field "choice")
	POST /api/questions/{id}/choices   → VoteChoice ({"choice_id": ...})

A vote adds exactly one to the choice, in a single UPDATE. A choice that
does not belong to the question is never counted: the form is shown again
with an error, the JSON endpoint acknowledges without counting.
*/
package handlers
