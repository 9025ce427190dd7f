// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the schema for the SQL
storage backends.

# Connections

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres"
(github.com/lib/pq):

	conn, err := db.Open(db.TypeSQLite, "lunch.db")

SQLite URLs without query parameters get a 5 second busy timeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - document: one named JSON document per row (name, body, updated_at)

The bot stores its whole state as a single document row.

# Placeholders

Queries are written with ? placeholders. Rebind converts them for
PostgreSQL:

	db.Rebind(db.TypePostgres, "SELECT body FROM document WHERE name = ?")
	// SELECT body FROM document WHERE name = $1
*/
package db
