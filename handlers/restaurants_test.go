// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-bot/models"
	"github.com/danielhkuo/lunch-bot/testutil"
)

func TestListRestaurants(t *testing.T) {
	tb := testutil.SetupBot(t)
	events := NewEventHandler(tb.Bot, testutil.GetTestConfig())
	handler := NewRestaurantsHandler(tb.Bot)

	// Three lunches, each opened after the previous window closed
	for _, round := range []struct {
		name   string
		scores []string
	}{
		{"Salad Bar", []string{"3", "4"}},
		{"Pizza Place", []string{"8", "9"}},
		{"Noodle Shop", nil},
	} {
		ev := models.Event{Text: "new-vote " + round.name, User: "U1", Token: testutil.TestVerifyToken}
		testutil.AssertStatus(t, postEvent(t, events, ev), http.StatusOK)
		for i, s := range round.scores {
			ev := models.Event{Text: "vote " + s, User: string(rune('A' + i)), Token: testutil.TestVerifyToken}
			testutil.AssertStatus(t, postEvent(t, events, ev), http.StatusOK)
		}
		tb.Clock.Advance(2 * time.Hour)
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedSort   string
		expectedOrder  []string
	}{
		{"default order", "", http.StatusOK, SortInsertion, []string{"Salad Bar", "Pizza Place", "Noodle Shop"}},
		{"explicit insertion", "?sort=insertion", http.StatusOK, SortInsertion, []string{"Salad Bar", "Pizza Place", "Noodle Shop"}},
		{"rank", "?sort=rank", http.StatusOK, SortRank, []string{"Pizza Place", "Salad Bar", "Noodle Shop"}},
		{"unknown sort", "?sort=alpha", http.StatusBadRequest, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/restaurants"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.ListRestaurants(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.RestaurantsResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Sort != tt.expectedSort {
				t.Errorf("Expected sort %q, got %q", tt.expectedSort, resp.Sort)
			}
			if len(resp.Restaurants) != len(tt.expectedOrder) {
				t.Fatalf("Expected %d restaurants, got %d", len(tt.expectedOrder), len(resp.Restaurants))
			}
			for i, name := range tt.expectedOrder {
				if resp.Restaurants[i].Title != name {
					t.Errorf("Position %d: expected %s, got %s", i, name, resp.Restaurants[i].Title)
				}
			}
		})
	}
}

func TestListRestaurants_Empty(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewRestaurantsHandler(tb.Bot)

	w := httptest.NewRecorder()
	handler.ListRestaurants(w, httptest.NewRequest("GET", "/restaurants", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := w.Body.String(); got != "{\"sort\":\"insertion\",\"restaurants\":[]}\n" {
		t.Errorf("Expected empty list, got %s", got)
	}
}
