// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken     = errors.New("invalid verification token")
	ErrInvalidSignature = errors.New("invalid request signature")
	ErrStaleRequest     = errors.New("request timestamp outside tolerance")
)

// SignatureVersion prefixes both the signed base string and the signature
const SignatureVersion = "v0"

// MaxClockSkew is how far a request timestamp may be from now
const MaxClockSkew = 5 * time.Minute

// ValidateToken compares a webhook token in constant time
func ValidateToken(got, want string) error {
	if !hmac.Equal([]byte(got), []byte(want)) {
		return ErrInvalidToken
	}
	return nil
}

// Sign creates the signature for a request body sent at timestamp
// (unix seconds): v0=hex(HMAC-SHA256(secret, "v0:timestamp:body"))
func Sign(secret, timestamp string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(SignatureVersion + ":" + timestamp + ":"))
	h.Write(body)
	return SignatureVersion + "=" + hex.EncodeToString(h.Sum(nil))
}

// ValidateSignature checks the request signature and rejects timestamps
// more than MaxClockSkew away from now
func ValidateSignature(secret, timestamp, signature string, body []byte, now time.Time) error {
	secs, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return ErrStaleRequest
	}
	skew := now.Sub(time.Unix(secs, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > MaxClockSkew {
		return ErrStaleRequest
	}

	expected := Sign(secret, timestamp, body)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
