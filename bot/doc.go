// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bot routes chat commands to the voting board.

A Bot owns the board, the store, and an event publisher:

	board, err := st.Load(ctx)
	b := bot.New(board, st, publisher)
	msg, err := b.Handle(ctx, models.Event{Text: "vote 7", User: "U1"})

Handle returns a nil message for text that is not a command.

# Consistency

One mutex serializes every command. Mutating commands run on a clone of the
board; the clone replaces the live board only after the store wrote it. A
store failure returns an error and leaves the live board as it was.

Rejected commands (no active vote, duplicate name, ...) reply with a plain
text explanation and write nothing.

# Events

After a successful write the bot publishes an events.Event. Publish errors
are logged and do not fail the command.
*/
package bot
