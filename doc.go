// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lunch bot server.

The lunch bot runs restaurant votes in a chat channel. Someone opens a vote
with "new-vote <name>", everyone answers "vote 0".."vote 9" while the vote
is open, and "list" or "rank" shows the colored result cards.

# Starting the Server

With the default file backend no settings are required:

	go run .

Or with flags:

	go run . -p 3318 -store sqlite -d lunch.db -valid-for 30

An optional .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - VALID_FOR (-valid-for): Minutes a vote stays open (default: 60)
  - STORE_BACKEND (-store): file, s3, sqlite, postgres or redis (default: file)
  - DATA_FILE (-data-file): JSON file for the file backend (default: data.json)
  - S3_BUCKET (-bucket), STORE_KEY (-key): S3 object or Redis key
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - REDIS_URL (-redis-url): Redis address or redis:// URL
  - CHANNEL (-channel): Only answer this channel
  - VERIFY_TOKEN, SIGNING_SECRET: Webhook verification
  - AMQP_URL, AMQP_QUEUE: Publish vote events to RabbitMQ

# Architecture

  - votes: Restaurant board, vote window and ranking
  - command: Chat text to typed commands
  - bot: Runs commands, persists, publishes events
  - present: Result cards
  - store: JSON document and blob backends
  - events: Vote lifecycle events over AMQP
  - handlers, router, middleware: HTTP webhook surface
  - auth: Webhook token and signature checks
  - db: SQL connection and schema
  - cliparse: Configuration parsing
  - models: Shared data types

See package documentation for each component.
*/
package main
