// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package events publishes vote lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Event types
const (
	TypeVoteOpened  = "vote.opened"
	TypeVoteRenamed = "vote.renamed"
	TypeOwnerSet    = "vote.owner_set"
	TypeVoteCast    = "vote.cast"
	TypeDeleted     = "restaurant.deleted"
)

// Event describes one persisted change
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Restaurant string    `json:"restaurant"`
	Previous   string    `json:"previous,omitempty"` // renames only
	Actor      string    `json:"actor"`
	Channel    string    `json:"channel,omitempty"`
	Score      *int      `json:"score,omitempty"`
	Owner      string    `json:"owner,omitempty"`
	At         time.Time `json:"at"`
}

// NewEvent fills in a fresh ID and timestamp
func NewEvent(eventType, restaurant, actor string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Restaurant: restaurant,
		Actor:      actor,
		At:         time.Now().UTC(),
	}
}

// Publisher delivers events after they are persisted
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event
type Nop struct{}

func (Nop) Publish(ctx context.Context, e Event) error { return nil }

// AMQPPublisher sends events to a durable queue through the default exchange
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	mu    sync.Mutex
}

// Dial connects to RabbitMQ, retrying a few times, and declares the queue
func Dial(url, queue string) (*AMQPPublisher, error) {
	var conn *amqp.Connection
	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		if conn, err = amqp.Dial(url); err == nil {
			break
		}
		slog.Warn("failed to connect to RabbitMQ, retrying", "attempt", attempt, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to RabbitMQ after multiple retries: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	slog.Info("connected to RabbitMQ", "queue", queue)
	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	// Channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID,
			Timestamp:    e.At,
			Type:         e.Type,
			Body:         body,
		},
	)
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(ctx context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
