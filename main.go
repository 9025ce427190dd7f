// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/lunch-bot/bot"
	"github.com/danielhkuo/lunch-bot/cliparse"
	"github.com/danielhkuo/lunch-bot/events"
	"github.com/danielhkuo/lunch-bot/router"
	"github.com/danielhkuo/lunch-bot/store"
)

func main() {
	var err error

	// .env is optional; real environment wins
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Open storage and load the board
	blob, closeBlob, err := store.OpenBlob(ctx, cfg)
	if err != nil {
		slog.Error("storage setup failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeBlob()

	st := store.New(blob, cfg.ValidFor)
	board, err := st.Load(ctx)
	if err != nil {
		slog.Error("loading votes failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Votes loaded", "restaurants", board.Len(), "valid_for", cfg.ValidFor)

	// Vote events are optional
	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.Dial(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			slog.Error("event publisher setup failed", "error", err)
			os.Exit(1)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		slog.Info("Publishing vote events", "queue", cfg.AMQPQueue)
	}

	// Create router
	mux := router.NewRouter(bot.New(board, st, publisher), cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
