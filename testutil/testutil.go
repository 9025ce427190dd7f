// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-bot/bot"
	"github.com/danielhkuo/lunch-bot/cliparse"
	"github.com/danielhkuo/lunch-bot/events"
	"github.com/danielhkuo/lunch-bot/store"
	"github.com/danielhkuo/lunch-bot/votes"
)

// TestVerifyToken is the webhook token GetTestConfig expects
const TestVerifyToken = "test-verify-token"

// Clock is a settable time source for bots under test
type Clock struct {
	Now time.Time
}

// Time returns the current fake time
func (c *Clock) Time() time.Time { return c.Now }

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) { c.Now = c.Now.Add(d) }

// TestBot bundles a bot with the pieces tests poke at
type TestBot struct {
	*bot.Bot
	Blob     *store.MemoryBlob
	Events   *events.Recorder
	Clock    *Clock
	ValidFor time.Duration
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		StoreBackend: cliparse.BackendFile,
		DataFile:     "data.json",
		ValidFor:     votes.DefaultValidFor,
		VerifyToken:  TestVerifyToken,
		AMQPQueue:    "lunch-votes",
	}
}

// SetupBot creates a bot backed by an in-memory blob with a fixed clock
func SetupBot(t *testing.T) *TestBot {
	t.Helper()

	blob := store.NewMemoryBlob()
	st := store.New(blob, votes.DefaultValidFor)
	board, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load empty board: %v", err)
	}

	clock := &Clock{Now: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &events.Recorder{}
	b := bot.New(board, st, recorder)
	b.SetClock(clock.Time)

	return &TestBot{
		Bot:      b,
		Blob:     blob,
		Events:   recorder,
		Clock:    clock,
		ValidFor: votes.DefaultValidFor,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded request like an outgoing webhook sends
func MakeFormRequest(path string, form url.Values, headers map[string]string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
