// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/lunch-bot/command"
	"github.com/danielhkuo/lunch-bot/events"
	"github.com/danielhkuo/lunch-bot/models"
	"github.com/danielhkuo/lunch-bot/present"
	"github.com/danielhkuo/lunch-bot/store"
	"github.com/danielhkuo/lunch-bot/votes"
)

// Reply texts
const (
	msgNoVotings     = "There are no stored votings."
	msgNoOngoing     = "There's no ongoing voting."
	msgAlreadyActive = "There's a valid voting taking place. Cast your vote instead."
)

// Bot runs chat commands against the board and persists every change
type Bot struct {
	mu        sync.Mutex
	board     *votes.Board
	store     *store.Store
	publisher events.Publisher
	now       func() time.Time
}

// New creates a bot around a loaded board. A nil publisher drops events.
func New(board *votes.Board, st *store.Store, publisher events.Publisher) *Bot {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Bot{
		board:     board,
		store:     st,
		publisher: publisher,
		now:       time.Now,
	}
}

// SetClock replaces the time source of the bot and its board
func (b *Bot) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
	b.board.SetClock(now)
}

// Handle parses an inbound message and runs it. It returns a nil message
// when the text is not a command.
func (b *Bot) Handle(ctx context.Context, ev models.Event) (*models.Message, error) {
	cmd, ok := command.Parse(ev.Text)
	if !ok {
		return nil, nil
	}
	return b.Execute(ctx, cmd, ev)
}

// Execute runs a decoded command on behalf of the event's user.
// Mutations are applied to a copy of the board and adopted only after the
// store accepted the new document.
func (b *Bot) Execute(ctx context.Context, cmd command.Command, ev models.Event) (*models.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !cmd.Kind.Mutates() {
		return b.query(cmd), nil
	}

	next := b.board.Clone()
	reply, event := b.apply(next, cmd, voterID(ev.User))
	if event == nil {
		// rejected; nothing to persist
		return models.TextMessage(reply), nil
	}

	if err := b.store.Save(ctx, next); err != nil {
		slog.Error("failed to persist command", "command", cmd.Kind.String(), "error", err)
		return nil, fmt.Errorf("%s: %w", cmd.Kind, err)
	}
	b.board = next

	event.Channel = ev.Channel
	if err := b.publisher.Publish(ctx, *event); err != nil {
		slog.Warn("failed to publish event", "type", event.Type, "error", err)
	}

	slog.Info("command applied", "command", cmd.Kind.String(), "restaurant", event.Restaurant, "user", ev.User)
	return models.TextMessage(reply), nil
}

// apply mutates board and returns the reply. The event is nil when the
// command was rejected.
func (b *Bot) apply(board *votes.Board, cmd command.Command, voter string) (string, *events.Event) {
	switch cmd.Kind {
	case command.NewVote:
		err := board.Create(cmd.Name)
		switch {
		case errors.Is(err, votes.ErrAlreadyActive):
			return msgAlreadyActive, nil
		case errors.Is(err, votes.ErrDuplicateName):
			return duplicateName(cmd.Name), nil
		}
		e := events.NewEvent(events.TypeVoteOpened, cmd.Name, voter)
		return fmt.Sprintf("Creating new entry valid for %d minutes. Use \"set-owner <owner>\" to say who suggested it and cast your votes.",
			int(board.ValidFor().Minutes())), &e

	case command.Rename:
		old, err := board.Rename(cmd.Name)
		switch {
		case errors.Is(err, votes.ErrNoActiveVote):
			return msgNoOngoing, nil
		case errors.Is(err, votes.ErrDuplicateName):
			return duplicateName(cmd.Name), nil
		}
		e := events.NewEvent(events.TypeVoteRenamed, cmd.Name, voter)
		e.Previous = old
		return fmt.Sprintf("Renamed %s to %s.", old, cmd.Name), &e

	case command.SetOwner:
		name, err := board.SetOwner(cmd.Owner)
		if errors.Is(err, votes.ErrNoActiveVote) {
			return msgNoOngoing, nil
		}
		e := events.NewEvent(events.TypeOwnerSet, name, voter)
		e.Owner = cmd.Owner
		return fmt.Sprintf("Setting owner for %s.", name), &e

	case command.Vote:
		name, err := board.Vote(voter, cmd.Score)
		if errors.Is(err, votes.ErrNoActiveVote) {
			return msgNoOngoing, nil
		}
		e := events.NewEvent(events.TypeVoteCast, name, voter)
		score := cmd.Score
		e.Score = &score
		return fmt.Sprintf("Vote saved for %s, thanks!", name), &e

	case command.Delete:
		if errors.Is(board.Delete(cmd.Name), votes.ErrNotFound) {
			return fmt.Sprintf("%s not found.", cmd.Name), nil
		}
		e := events.NewEvent(events.TypeDeleted, cmd.Name, voter)
		return fmt.Sprintf("Deleted %s.", cmd.Name), &e
	}

	return "", nil
}

func (b *Bot) query(cmd command.Command) *models.Message {
	switch cmd.Kind {
	case command.Help:
		return models.TextMessage(HelpText(b.board.ValidFor()))

	case command.List, command.Rank:
		if b.board.Len() == 0 {
			return models.TextMessage(msgNoVotings)
		}
		entries := b.board.List()
		if cmd.Kind == command.Rank {
			entries = b.board.Rank()
		}
		return &models.Message{Attachments: present.RenderAll(entries, b.now())}

	case command.Current:
		name, ok := b.board.Active()
		if !ok {
			return models.TextMessage(msgNoOngoing)
		}
		rec, _ := b.board.Get(name)
		return models.TextMessage(fmt.Sprintf("Ongoing voting for: %s. Remaining time: %d minutes. Votes so far: %d.",
			name, b.board.RemainingMinutes(name), len(rec.Votes)))
	}
	return nil
}

// Cards renders every restaurant, ranked or in insertion order
func (b *Bot) Cards(ranked bool) []models.Card {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.board.List()
	if ranked {
		entries = b.board.Rank()
	}
	return present.RenderAll(entries, b.now())
}

func duplicateName(name string) string {
	return fmt.Sprintf("%s already exists. You need an unique name.", name)
}

// voterID formats a chat user id as a mention
func voterID(user string) string {
	return "<@" + user + ">"
}
