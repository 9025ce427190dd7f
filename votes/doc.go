// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes implements the restaurant voting board.

# Board

A Board keeps restaurants in insertion order and allows at most one open
vote at a time. A vote is open while now - CreatedAt < ValidFor:

	board := votes.NewBoard(60 * time.Minute)
	err := board.Create("Pizza Place")
	_, err = board.Vote("<@U1>", 7)

Expired restaurants stay on the board. They can still be listed, ranked,
and deleted, but no longer accept votes, owners, or renames.

# Active Vote

Active scans restaurants in insertion order and returns the first one still
open. Create refuses to open a second vote, so at most one should ever
qualify.

# Errors

	ErrNoActiveVote   rename, set-owner, or vote with nothing open
	ErrAlreadyActive  create while a vote is open
	ErrDuplicateName  create or rename onto an existing name
	ErrNotFound       delete of an unknown name
	ErrEmptyVoteSet   average of a restaurant nobody voted for

# Ranking

Rank sorts by descending average. Restaurants without votes have no average
and are listed after all rated restaurants. The sort is stable, so ties keep
insertion order.

# Copy Semantics

List, Rank, and Get return copies. Clone copies the whole board so a caller
can apply a change, persist it, and only then adopt the result.
*/
package votes
