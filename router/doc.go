// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Pages (HTML):

	GET  /polls              - Latest five published questions
	GET  /polls/{id}         - Vote form (published questions only)
	GET  /polls/{id}/results - Vote counts
	POST /polls/{id}/vote    - Record a vote, redirect to results

JSON API (CORS enabled for cfg.CORSOrigins):

	GET  /api/questions              - Every question, newest first
	POST /api/questions              - Create a question with choices
	GET  /api/questions/{id}/choices - Choices with vote counts
	POST /api/questions/{id}/choices - Vote for choice_id

GET / redirects to /polls.
*/
package router
