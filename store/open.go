// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/lunch-bot/cliparse"
	"github.com/danielhkuo/lunch-bot/db"
)

// documentName is the row name used by the SQL backends
const documentName = "restaurants"

// OpenBlob creates the blob selected by cfg.StoreBackend. The returned
// close function releases any connection the backend holds.
func OpenBlob(ctx context.Context, cfg cliparse.Config) (Blob, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case cliparse.BackendFile:
		slog.Info("using file storage", "path", cfg.DataFile)
		return NewFileBlob(cfg.DataFile), noop, nil

	case cliparse.BackendS3:
		blob, err := NewS3Blob(ctx, cfg.Bucket, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using s3 storage", "bucket", cfg.Bucket, "key", cfg.Key)
		return blob, noop, nil

	case cliparse.BackendSQLite, cliparse.BackendPostgres:
		conn, err := db.Open(cfg.StoreBackend, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		slog.Info("using sql storage", "type", cfg.StoreBackend)
		return NewSQLBlob(conn, cfg.StoreBackend, documentName), conn.Close, nil

	case cliparse.BackendRedis:
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using redis storage", "key", cfg.Key)
		return NewRedisBlob(client, cfg.Key), client.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StoreBackend)
}
