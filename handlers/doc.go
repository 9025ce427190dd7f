// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the lunch bot.

# Handler Types

  - EventHandler: chat webhook events (POST /events)
  - RestaurantsHandler: read-only card listing (GET /restaurants)

Handlers depend on small interfaces satisfied by *bot.Bot:

	eventHandler := handlers.NewEventHandler(b, cfg)
	restaurantsHandler := handlers.NewRestaurantsHandler(b)

# Events

The chat platform posts either JSON

	{"text": "vote 8", "channel": "C1", "user": "U1", "token": "..."}

or outgoing-webhook form fields (text, channel_id, user_id, token).

Verification, when configured:

  - SigningSecret: X-Signature must equal
    v0=hex(HMAC-SHA256(secret, "v0:" + X-Request-Timestamp + ":" + body))
    and the timestamp must be within five minutes
  - VerifyToken: the token field must match

Failures return 401. With Channel set, events from other channels get an
empty 200.

Responses:

	200 {"text": "...", "attachments": [{"title", "text", "color", "footer"}]}
	204 text was not a command
	500 the board could not be saved; nothing changed

# Restaurants

	GET /restaurants            insertion order
	GET /restaurants?sort=rank  best average first, unrated last
*/
package handlers
