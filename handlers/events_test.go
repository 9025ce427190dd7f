// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-bot/auth"
	"github.com/danielhkuo/lunch-bot/models"
	"github.com/danielhkuo/lunch-bot/testutil"
)

func postEvent(t *testing.T, h *EventHandler, ev models.Event) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/events", ev, nil)
	w := httptest.NewRecorder()
	h.HandleEvent(w, req)
	return w
}

func TestHandleEvent(t *testing.T) {
	tb := testutil.SetupBot(t)
	cfg := testutil.GetTestConfig()
	handler := NewEventHandler(tb.Bot, cfg)

	tests := []struct {
		name           string
		text           string
		expectedStatus int
		expectedText   string
	}{
		{"empty list", "list", http.StatusOK, "There are no stored votings."},
		{"open vote", "new-vote Pizza Place", http.StatusOK, "Creating new entry valid for 60 minutes."},
		{"second vote rejected", "NEW-VOTE Sushi", http.StatusOK, "There's a valid voting taking place. Cast your vote instead."},
		{"cast vote", "vote 8", http.StatusOK, "Vote saved for Pizza Place, thanks!"},
		{"current", "  current ", http.StatusOK, "Ongoing voting for: Pizza Place. Remaining time: 60 minutes. Votes so far: 1."},
		{"not a command", "what's for lunch?", http.StatusNoContent, ""},
		{"two digit vote", "vote 10", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEvent(t, handler, models.Event{
				Text: tt.text, Channel: "C1", User: "U1", Token: testutil.TestVerifyToken,
			})
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				if w.Body.Len() != 0 {
					t.Errorf("Expected empty body, got %q", w.Body.String())
				}
				return
			}

			var msg models.Message
			testutil.AssertJSON(t, w, &msg)
			if !strings.HasPrefix(msg.Text, tt.expectedText) {
				t.Errorf("Expected text starting with %q, got %q", tt.expectedText, msg.Text)
			}
		})
	}
}

func TestHandleEvent_ListCards(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewEventHandler(tb.Bot, testutil.GetTestConfig())

	for _, ev := range []models.Event{
		{Text: "new-vote Pizza Place", User: "U1"},
		{Text: "set-owner Ana", User: "U1"},
		{Text: "vote 8", User: "U1"},
		{Text: "vote 8", User: "U2"},
	} {
		ev.Token = testutil.TestVerifyToken
		testutil.AssertStatus(t, postEvent(t, handler, ev), http.StatusOK)
	}

	w := postEvent(t, handler, models.Event{Text: "list", User: "U3", Token: testutil.TestVerifyToken})
	testutil.AssertStatus(t, w, http.StatusOK)

	raw := w.Body.String()
	if !strings.Contains(raw, "<@U1>: 8") {
		t.Errorf("Expected unescaped voter mention in body, got %s", raw)
	}

	var msg models.Message
	testutil.AssertJSON(t, w, &msg)
	if len(msg.Attachments) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(msg.Attachments))
	}
	card := msg.Attachments[0]
	if card.Title != "Pizza Place" || card.Color != "#00FF00" {
		t.Errorf("Expected green Pizza Place card, got %+v", card)
	}
	if !strings.Contains(card.Text, "Owned by: Ana") || !strings.Contains(card.Text, "Average: 8.0") {
		t.Errorf("Unexpected card text %q", card.Text)
	}
}

func TestHandleEvent_FormBody(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewEventHandler(tb.Bot, testutil.GetTestConfig())

	form := url.Values{
		"text":       {"new-vote Taco Truck"},
		"channel_id": {"C1"},
		"user_id":    {"U1"},
		"token":      {testutil.TestVerifyToken},
	}
	w := httptest.NewRecorder()
	handler.HandleEvent(w, testutil.MakeFormRequest("/events", form, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	cards := tb.Cards(false)
	if len(cards) != 1 || cards[0].Title != "Taco Truck" {
		t.Errorf("Expected Taco Truck to be stored, got %+v", cards)
	}
}

func TestHandleEvent_Token(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewEventHandler(tb.Bot, testutil.GetTestConfig())

	w := postEvent(t, handler, models.Event{Text: "new-vote Pizza", User: "U1", Token: "wrong"})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	if tb.Blob.Writes() != 0 {
		t.Errorf("Expected no writes for rejected event, got %d", tb.Blob.Writes())
	}
}

func TestHandleEvent_Signature(t *testing.T) {
	tb := testutil.SetupBot(t)
	cfg := testutil.GetTestConfig()
	cfg.VerifyToken = ""
	cfg.SigningSecret = "shh"
	handler := NewEventHandler(tb.Bot, cfg)

	now := time.Unix(1710417600, 0)
	handler.now = func() time.Time { return now }

	body := []byte(`{"text":"list","channel":"C1","user":"U1"}`)
	ts := strconv.FormatInt(now.Unix(), 10)

	tests := []struct {
		name           string
		timestamp      string
		signature      string
		expectedStatus int
	}{
		{"valid", ts, auth.Sign("shh", ts, body), http.StatusOK},
		{"wrong secret", ts, auth.Sign("nope", ts, body), http.StatusUnauthorized},
		{"missing signature", ts, "", http.StatusUnauthorized},
		{"stale", strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10),
			auth.Sign("shh", strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10), body), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(TimestampHeader, tt.timestamp)
			req.Header.Set(SignatureHeader, tt.signature)
			w := httptest.NewRecorder()
			handler.HandleEvent(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestHandleEvent_ChannelFilter(t *testing.T) {
	tb := testutil.SetupBot(t)
	cfg := testutil.GetTestConfig()
	cfg.Channel = "C-LUNCH"
	handler := NewEventHandler(tb.Bot, cfg)

	w := postEvent(t, handler, models.Event{Text: "new-vote Pizza", Channel: "C-RANDOM", User: "U1", Token: testutil.TestVerifyToken})
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body for other channel, got %q", w.Body.String())
	}
	if tb.Blob.Writes() != 0 {
		t.Errorf("Expected other channel to be ignored, got %d writes", tb.Blob.Writes())
	}

	w = postEvent(t, handler, models.Event{Text: "new-vote Pizza", Channel: "C-LUNCH", User: "U1", Token: testutil.TestVerifyToken})
	testutil.AssertStatus(t, w, http.StatusOK)
	if tb.Blob.Writes() != 1 {
		t.Errorf("Expected one write, got %d", tb.Blob.Writes())
	}
}

func TestHandleEvent_PersistFailure(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewEventHandler(tb.Bot, testutil.GetTestConfig())
	tb.Blob.SetWriteErr(errors.New("disk full"))

	w := postEvent(t, handler, models.Event{Text: "new-vote Pizza", User: "U1", Token: testutil.TestVerifyToken})
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Failed to save votes" {
		t.Errorf("Expected save failure message, got %q", resp.Message)
	}
	if len(tb.Cards(false)) != 0 {
		t.Error("Expected board to be unchanged after failed save")
	}
}

func TestHandleEvent_InvalidBody(t *testing.T) {
	tb := testutil.SetupBot(t)
	handler := NewEventHandler(tb.Bot, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/events", strings.NewReader(`{"text":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.HandleEvent(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
