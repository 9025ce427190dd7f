// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/lunch-bot/auth"
	"github.com/danielhkuo/lunch-bot/cliparse"
	"github.com/danielhkuo/lunch-bot/middleware"
	"github.com/danielhkuo/lunch-bot/models"
)

// Signed request headers
const (
	TimestampHeader = "X-Request-Timestamp"
	SignatureHeader = "X-Signature"
)

// maxEventBytes bounds the webhook body
const maxEventBytes = 64 << 10

// Responder turns a chat event into a reply
type Responder interface {
	Handle(ctx context.Context, ev models.Event) (*models.Message, error)
}

type EventHandler struct {
	bot Responder
	cfg cliparse.Config
	now func() time.Time
}

func NewEventHandler(bot Responder, cfg cliparse.Config) *EventHandler {
	return &EventHandler{bot: bot, cfg: cfg, now: time.Now}
}

// HandleEvent handles POST /events
func (h *EventHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
	r.Body.Close()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	if h.cfg.SigningSecret != "" {
		err := auth.ValidateSignature(h.cfg.SigningSecret,
			r.Header.Get(TimestampHeader), r.Header.Get(SignatureHeader), body, h.now())
		if err != nil {
			slog.Warn("rejected event", "error", err, "remote", middleware.GetClientIP(r))
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}
	}

	ev, err := decodeEvent(r.Header.Get("Content-Type"), body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event body")
		return
	}

	if h.cfg.VerifyToken != "" {
		if err := auth.ValidateToken(ev.Token, h.cfg.VerifyToken); err != nil {
			slog.Warn("rejected event", "error", err, "remote", middleware.GetClientIP(r))
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}
	}

	// Other channels are acknowledged but not handled
	if h.cfg.Channel != "" && ev.Channel != h.cfg.Channel {
		w.WriteHeader(http.StatusOK)
		return
	}

	msg, err := h.bot.Handle(r.Context(), ev)
	if err != nil {
		slog.Error("command failed", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save votes")
		return
	}
	if msg == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, msg)
}

// decodeEvent reads a JSON event or outgoing-webhook form fields
func decodeEvent(contentType string, body []byte) (models.Event, error) {
	var ev models.Event

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return ev, err
		}
		ev.Text = form.Get("text")
		ev.Channel = form.Get("channel_id")
		ev.User = form.Get("user_id")
		ev.Token = form.Get("token")
		return ev, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&ev); err != nil {
		return ev, err
	}
	return ev, nil
}
