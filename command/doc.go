// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package command decodes chat messages into typed commands.

Matching is case-insensitive and covers the whole message after trimming
surrounding whitespace:

	help
	list
	rank
	current
	new-vote <name>
	rename <name>
	set-owner <owner>
	vote <digit>
	delete <name>

vote only accepts a single digit 0-9; "vote 10" is not a command at all.
Anything that does not match is ignored by the caller.
*/
package command
