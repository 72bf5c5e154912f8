// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/pages"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, pages.MustNewRenderer())
	questionHandler := handlers.NewQuestionDataHandler(db)
	choiceHandler := handlers.NewChoiceDataHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTML pages
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(pollHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(pollHandler.Vote))

	// JSON API, callable cross-origin
	api := middleware.CORS(cfg.CORSOrigins)
	mux.Handle("GET /api/questions", api(middleware.WithLogging(questionHandler.ListQuestions)))
	mux.Handle("POST /api/questions", api(middleware.WithLogging(questionHandler.CreateQuestion)))
	mux.Handle("GET /api/questions/{id}/choices", api(middleware.WithLogging(choiceHandler.ListChoices)))
	mux.Handle("POST /api/questions/{id}/choices", api(middleware.WithLogging(choiceHandler.VoteChoice)))
	mux.Handle("OPTIONS /api/", api(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls", http.StatusSeeOther)
	})

	return mux
}
