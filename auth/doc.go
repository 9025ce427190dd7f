// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies that inbound webhook requests come from the chat
platform.

# Verification Tokens

Outgoing webhooks carry a shared token in the payload:

	err := auth.ValidateToken(event.Token, cfg.VerifyToken)

The comparison is constant time.

# Request Signatures

Signed requests carry X-Request-Timestamp (unix seconds) and X-Signature:

	X-Signature: v0=hex(HMAC-SHA256(secret, "v0:" + timestamp + ":" + body))

	sig := auth.Sign(secret, timestamp, body)
	err := auth.ValidateSignature(secret, timestamp, sig, body, time.Now())

Timestamps more than MaxClockSkew (5 minutes) from now are rejected with
ErrStaleRequest to limit replay.
*/
package auth
