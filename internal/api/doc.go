// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

/*
Package api is the HTTP layer of newsrec.

Routes:

	POST /api/v1/recommend       rank a batch of articles against a target title
	POST /api/v1/summarize       summarize free text
	GET  /api/v1/news            NewsAPI search (q, language, sort_by, page_size, page)
	GET  /api/v1/news/trending   NewsAPI top headlines (country, category, limit)
	GET  /api/v1/scrape          extract the main article of a web page (url)
	GET  /health                 status of the process and its upstreams
	GET  /metrics                prometheus exposition

POST /recommend and POST /summarize are unversioned aliases.

Every JSON response uses the APIResponse envelope. Collaborators are
injected through Dependencies as small interfaces so each endpoint can be
tested against fakes.
*/
package api
