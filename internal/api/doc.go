// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP surface of Cinematch: the HTML recommendation
page, the JSON API under /api/v1, the poster image endpoint, health probes,
and the Prometheus scrape endpoint.

Routes (see SetupChi):

	GET /                                 form with searchable title list
	GET /recommend?title=                 form plus five recommendations with posters
	GET /api/v1/movies?q=&limit=          title search
	GET /api/v1/recommendations?title=    top-K recommendations as JSON
	GET /api/v1/posters/{movieID}         poster JPEG (placeholder on failure)
	GET /api/v1/health/live               liveness probe
	GET /api/v1/health/ready              readiness probe
	GET /metrics                          Prometheus metrics

JSON endpoints respond with the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "TITLE_NOT_FOUND", "message": "..."}, ...}

Error codes: BAD_REQUEST, VALIDATION_FAILED, TITLE_NOT_FOUND,
TOO_MANY_REQUESTS, INTERNAL_ERROR.
*/
package api
