// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const questionColumns = `id, question_text, pub_date`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var q models.Question
	if err := row.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
		return models.Question{}, err
	}
	q.PubDate = q.PubDate.UTC()
	return q, nil
}

func (s *Store) queryQuestions(ctx context.Context, op, query string, args ...any) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return questions, nil
}

// LatestPublished returns up to limit questions whose pub_date is not after now,
// most recently published first.
func (s *Store) LatestPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	const op = "store.LatestPublished"

	query := `SELECT ` + questionColumns + ` FROM question WHERE pub_date <= $1 ORDER BY pub_date DESC, id DESC LIMIT $2`

	return s.queryQuestions(ctx, op, query, now.UTC(), limit)
}

// Questions returns every question regardless of pub_date, newest created first.
func (s *Store) Questions(ctx context.Context) ([]models.Question, error) {
	const op = "store.Questions"

	query := `SELECT ` + questionColumns + ` FROM question ORDER BY id DESC`

	return s.queryQuestions(ctx, op, query)
}

// Question looks a question up by id without any publication filter.
func (s *Store) Question(ctx context.Context, id int64) (models.Question, error) {
	const op = "store.Question"

	query := `SELECT ` + questionColumns + ` FROM question WHERE id = $1`

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Question{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// PublishedQuestion is Question restricted to questions published at or before now.
func (s *Store) PublishedQuestion(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	const op = "store.PublishedQuestion"

	query := `SELECT ` + questionColumns + ` FROM question WHERE id = $1 AND pub_date <= $2`

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, id, now.UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Question{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
		}
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// Choices returns the choices of a question in id order.
func (s *Store) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	const op = "store.Choices"

	query := `SELECT id, question_id, choice_text, votes FROM choice WHERE question_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		choices = append(choices, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return choices, nil
}

// WithChoices loads the choices of q.
func (s *Store) WithChoices(ctx context.Context, q models.Question) (models.QuestionWithChoices, error) {
	choices, err := s.Choices(ctx, q.ID)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}
	return models.QuestionWithChoices{Question: q, Choices: choices}, nil
}

// Vote adds exactly one vote to a choice of the given question. The increment
// happens inside the UPDATE so concurrent votes are never lost.
// Returns ErrChoiceNotFound if the choice does not exist or belongs to another question.
func (s *Store) Vote(ctx context.Context, questionID, choiceID int64) error {
	const op = "store.Vote"

	query := `UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2`

	res, err := s.db.ExecContext(ctx, query, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrChoiceNotFound)
	}

	return nil
}

// CreateQuestion inserts a question and one zero-vote choice per entry of
// choiceTexts in a single transaction, returning the new question id.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time, choiceTexts []string) (int64, error) {
	const op = "store.CreateQuestion"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var questionID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate.UTC()).Scan(&questionID)
	if err != nil {
		return 0, fmt.Errorf("%s: insert question: %w", op, err)
	}

	for _, choiceText := range choiceTexts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO choice (question_id, choice_text, votes)
			VALUES ($1, $2, 0)
		`, questionID, choiceText)
		if err != nil {
			return 0, fmt.Errorf("%s: insert choice: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return questionID, nil
}
