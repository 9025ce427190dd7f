// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bot

import (
	"fmt"
	"strings"
	"time"
)

// HelpText describes the public commands. delete is left out on purpose.
func HelpText(validFor time.Duration) string {
	minutes := int(validFor.Minutes())

	var b strings.Builder
	b.WriteString("*Lunch Bot*\n")
	fmt.Fprintf(&b, "This bot helps us classify our lunch places. "+
		"One of us opens up the voting and in the next %d minutes everyone can cast their vote. "+
		"Listing shows the average, color coded, along with everyone's votes.\n\n", minutes)

	commands := []struct{ usage, desc string }{
		{"list", "List all the restaurants we classified so far, ordered by timestamp."},
		{"rank", "List all the restaurants we classified so far, ordered by descending vote average."},
		{"current", "Show the ongoing vote, its remaining time, and how many votes it has."},
		{"new-vote <name>", fmt.Sprintf("Start a new vote for a restaurant. The new vote will be available for %d minutes.", minutes)},
		{"rename <new-name>", "Rename the current voting."},
		{"set-owner <owner>", "Updates the owner (the person who decided on the restaurant) for the current vote."},
		{"vote <digit>", "Cast your vote for the current vote. Voting again while it is open overwrites your vote."},
	}
	for _, c := range commands {
		fmt.Fprintf(&b, "`%s` - %s\n", c.usage, c.desc)
	}
	return strings.TrimRight(b.String(), "\n")
}
