// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the polls server.

# Domain Types

  - Question: question_text and pub_date; visible once pub_date has passed
  - Choice: choice_text and a votes counter owned by one Question
  - QuestionWithChoices: a question plus its choices in id order

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question, choices[].choice
  - VoteRequest: choice_id (number or numeric string)

# Response Types

  - Ack: the fixed {"objects": 0} acknowledgement for JSON writes
  - QuestionListResponse: objects[] of {text, id}
  - ChoiceListResponse: objects[] of {text, votes, id} plus question
  - ErrorResponse: error, message

# Constants

	LatestLimit     = 5
	RecentWindow    = 24 * time.Hour
	NoChoiceMessage = "You didn't select a choice."
*/
package models
