// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pages renders the HTML pages of the polls site.

Templates are embedded from templates/ and share a "base" layout:

  - index: latest published questions (IndexData)
  - detail: vote form with optional error message (DetailData)
  - results: choices with vote counts (ResultsData)

Template functions come from go-humanize (humanTime, comma) plus pluralize.

	r := pages.MustNewRenderer()
	r.Render(w, http.StatusOK, pages.Results, pages.ResultsData{...})
*/
package pages
