// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads an optional .env file first, so local development does
not need exported variables:

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

# CLI Flags and Environment Variables

	-p               PORT            Server port (default: 3318)
	-store           STORE_BACKEND   file, s3, sqlite, postgres, redis (default: file)
	-data-file       DATA_FILE       File backend path (default: data.json)
	-bucket          S3_BUCKET       S3 bucket (required for s3)
	-key             STORE_KEY       S3 object key or Redis key (default: data.json)
	-d               DATABASE_URL    SQL backends (required for sqlite, postgres)
	-redis-url       REDIS_URL       Redis backend (required for redis)
	-valid-for       VALID_FOR       Minutes a vote stays open (default: 60)
	-channel         CHANNEL         Only handle events from this channel
	-verify-token    VERIFY_TOKEN    Webhook token check
	-signing-secret  SIGNING_SECRET  Webhook signature check
	-amqp-url        AMQP_URL        Publish vote events to RabbitMQ
	-amqp-queue      AMQP_QUEUE      Event queue (default: lunch-votes)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - the storage backend is unknown
  - the selected backend is missing its bucket, database URL, or Redis URL
  - PORT or VALID_FOR is not a number, or the window is not positive
*/
package cliparse
