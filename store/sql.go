// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/lunch-bot/db"
)

// SQLBlob stores the document as one row of the document table
type SQLBlob struct {
	db     *sql.DB
	dbType string
	name   string
}

// NewSQLBlob uses conn, which must already have the schema from
// db.CreateSchema
func NewSQLBlob(conn *sql.DB, dbType, name string) *SQLBlob {
	return &SQLBlob{db: conn, dbType: dbType, name: name}
}

func (s *SQLBlob) Exists(ctx context.Context) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, db.Rebind(s.dbType, `
		SELECT COUNT(*) FROM document WHERE name = ?
	`), s.name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLBlob) Read(ctx context.Context) ([]byte, error) {
	var body string
	err := s.db.QueryRowContext(ctx, db.Rebind(s.dbType, `
		SELECT body FROM document WHERE name = ?
	`), s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (s *SQLBlob) Write(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, db.Rebind(s.dbType, `
		INSERT INTO document (name, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET body = excluded.body, updated_at = excluded.updated_at
	`), s.name, string(data), time.Now().UTC())
	return err
}
