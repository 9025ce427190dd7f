// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lunch-bot/bot"
	"github.com/danielhkuo/lunch-bot/cliparse"
	"github.com/danielhkuo/lunch-bot/handlers"
	"github.com/danielhkuo/lunch-bot/middleware"
)

func NewRouter(b *bot.Bot, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(b, cfg)
	restaurantsHandler := handlers.NewRestaurantsHandler(b)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Chat webhook
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.HandleEvent))

	// Read-only listing, open to dashboards
	listRestaurants := middleware.CORS(middleware.WithLogging(restaurantsHandler.ListRestaurants))
	mux.HandleFunc("GET /restaurants", listRestaurants)
	mux.HandleFunc("OPTIONS /restaurants", listRestaurants)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lunch-bot v1"))
	})

	return mux
}
