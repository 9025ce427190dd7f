// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lunch bot.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(b, cfg)

# Endpoints

	GET  /health      - Liveness check
	POST /events      - Chat webhook (commands in, replies out)
	GET  /restaurants - Rendered cards, ?sort=rank for best first
	GET  /            - Banner

/events and /restaurants are wrapped with request logging. /restaurants
also answers CORS preflight requests.
*/
package router
