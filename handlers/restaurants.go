// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lunch-bot/middleware"
	"github.com/danielhkuo/lunch-bot/models"
)

// Sort orders for GET /restaurants
const (
	SortInsertion = "insertion"
	SortRank      = "rank"
)

// CardSource renders the stored restaurants
type CardSource interface {
	Cards(ranked bool) []models.Card
}

type RestaurantsHandler struct {
	source CardSource
}

func NewRestaurantsHandler(source CardSource) *RestaurantsHandler {
	return &RestaurantsHandler{source: source}
}

// ListRestaurants handles GET /restaurants
func (h *RestaurantsHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	sort := r.URL.Query().Get("sort")
	switch sort {
	case "", SortInsertion:
		sort = SortInsertion
	case SortRank:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be insertion or rank")
		return
	}

	cards := h.source.Cards(sort == SortRank)
	if cards == nil {
		cards = []models.Card{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.RestaurantsResponse{
		Sort:        sort,
		Restaurants: cards,
	})
}
