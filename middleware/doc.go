// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /events", middleware.WithLogging(handler))

Each request gets an ID (from X-Request-ID or a new UUID), echoed in the
response header and available to handlers through RequestID(ctx). Logs
request start (method, path, remote) and completion (status, duration_ms).

# CORS Middleware

GET /restaurants is readable cross-origin:

	mux.HandleFunc("GET /restaurants", middleware.CORS(handler))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var ev models.Event
	if err := middleware.ParseJSONBody(r, &ev); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

JSON output does not HTML-escape, so voter mentions like <@U1> stay readable.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
