// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer for questions and choices.

	st := store.New(conn)
	latest, err := st.LatestPublished(ctx, time.Now(), models.LatestLimit)

# Reads

  - LatestPublished: published questions, newest pub_date first, capped
  - Questions: every question, newest created first, unfiltered
  - Question / PublishedQuestion: single lookup, with or without the pub_date filter
  - Choices / WithChoices: a question's choices in id order

# Writes

  - CreateQuestion: question plus zero-vote choices in one transaction
  - Vote: votes = votes + 1 for a choice owned by the question

Lookups that miss wrap ErrQuestionNotFound or ErrChoiceNotFound; test with errors.Is.
*/
package store
