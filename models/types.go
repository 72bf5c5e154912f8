package models

import (
	"encoding/json"
	"time"
)

// LatestLimit caps the listing page.
const LatestLimit = 5

// RecentWindow is how far back a publication date still counts as recent.
const RecentWindow = 24 * time.Hour

// NoChoiceMessage is shown when a vote names no choice of the question.
const NoChoiceMessage = "You didn't select a choice."

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether q went live within RecentWindow before now.
// Questions dated in the future are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.After(now) && !q.PubDate.Before(now.Add(-RecentWindow))
}

// IsPublished reports whether q is visible to end users at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// TotalVotes sums the votes across all choices.
func (q QuestionWithChoices) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// Request types

type NewChoice struct {
	Choice string `json:"choice"`
}

type CreateQuestionRequest struct {
	Question string      `json:"question"`
	Choices  []NewChoice `json:"choices"`
}

// choice_id may arrive as a number or a numeric string
type VoteRequest struct {
	ChoiceID json.Number `json:"choice_id"`
}

// Response types

// Ack is the fixed acknowledgement returned by the JSON write endpoints.
type Ack struct {
	Objects int `json:"objects"`
}

type QuestionSummary struct {
	Text string `json:"text"`
	ID   int64  `json:"id"`
}

type QuestionListResponse struct {
	Objects []QuestionSummary `json:"objects"`
}

type ChoiceSummary struct {
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
	ID    int64  `json:"id"`
}

type ChoiceListResponse struct {
	Objects  []ChoiceSummary `json:"objects"`
	Question string          `json:"question"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
