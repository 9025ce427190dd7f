// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/danielhkuo/lunch-bot/models"
	"github.com/danielhkuo/lunch-bot/votes"
)

var ErrBlobNotFound = errors.New("blob not found")

// Blob is a single stored document
type Blob interface {
	Exists(ctx context.Context) (bool, error)
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Store loads and saves the whole board as one JSON document
type Store struct {
	blob     Blob
	validFor time.Duration
}

func New(blob Blob, validFor time.Duration) *Store {
	return &Store{blob: blob, validFor: validFor}
}

// Load reads the board. A missing document yields an empty board.
func (s *Store) Load(ctx context.Context) (*votes.Board, error) {
	exists, err := s.blob.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if !exists {
		return votes.NewBoard(s.validFor), nil
	}

	data, err := s.blob.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	board, err := Decode(data, s.validFor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return board, nil
}

// Save overwrites the stored document with the board's contents
func (s *Store) Save(ctx context.Context, board *votes.Board) error {
	data, err := Encode(board)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.blob.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Encode renders the board as pretty-printed JSON, restaurants in
// insertion order
func Encode(board *votes.Board) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"restaurants":{`)
	for i, e := range board.List() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := models.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		value, err := models.Marshal(e.Restaurant)
		if err != nil {
			return nil, fmt.Errorf("restaurant %q: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteString(`}}`)
	return pretty.Pretty(buf.Bytes()), nil
}

// Decode parses a stored document, keeping the order restaurants appear in
func Decode(data []byte, validFor time.Duration) (*votes.Board, error) {
	board := votes.NewBoard(validFor)
	if len(bytes.TrimSpace(data)) == 0 {
		return board, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	restaurants := gjson.GetBytes(data, "restaurants")
	if !restaurants.Exists() || restaurants.Type == gjson.Null {
		return board, nil
	}
	if !restaurants.IsObject() {
		return nil, errors.New("restaurants must be an object")
	}

	var err error
	restaurants.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		var r models.Restaurant
		if err = json.Unmarshal([]byte(value.Raw), &r); err != nil {
			err = fmt.Errorf("restaurant %q: %w", name, err)
			return false
		}
		if err = board.Insert(name, r); err != nil {
			err = fmt.Errorf("restaurant %q: %w", name, err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}
