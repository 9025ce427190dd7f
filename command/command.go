// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"regexp"
	"strings"
)

// Kind identifies a chat command
type Kind int

const (
	Unknown Kind = iota
	Help
	List
	Rank
	Current
	NewVote
	Rename
	SetOwner
	Vote
	Delete
)

var kindNames = map[Kind]string{
	Unknown:  "unknown",
	Help:     "help",
	List:     "list",
	Rank:     "rank",
	Current:  "current",
	NewVote:  "new-vote",
	Rename:   "rename",
	SetOwner: "set-owner",
	Vote:     "vote",
	Delete:   "delete",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Mutates reports whether the command changes stored state
func (k Kind) Mutates() bool {
	switch k {
	case NewVote, Rename, SetOwner, Vote, Delete:
		return true
	}
	return false
}

// Command is a decoded chat command with its payload
type Command struct {
	Kind  Kind
	Name  string // NewVote, Rename, Delete
	Owner string // SetOwner
	Score int    // Vote, 0-9
}

var (
	bareRe  = regexp.MustCompile(`(?i)^(help|list|rank|current)$`)
	argRe   = regexp.MustCompile(`(?i)^(new-vote|rename|set-owner|delete) (.*)$`)
	scoreRe = regexp.MustCompile(`(?i)^vote ([0-9])$`)
)

// Parse decodes a chat message. It returns false for anything that is not a
// command, including commands with an empty argument.
func Parse(text string) (Command, bool) {
	text = strings.TrimSpace(text)

	if m := bareRe.FindStringSubmatch(text); m != nil {
		switch strings.ToLower(m[1]) {
		case "help":
			return Command{Kind: Help}, true
		case "list":
			return Command{Kind: List}, true
		case "rank":
			return Command{Kind: Rank}, true
		default:
			return Command{Kind: Current}, true
		}
	}

	if m := scoreRe.FindStringSubmatch(text); m != nil {
		return Command{Kind: Vote, Score: int(m[1][0] - '0')}, true
	}

	if m := argRe.FindStringSubmatch(text); m != nil {
		arg := strings.TrimSpace(m[2])
		if arg == "" {
			return Command{}, false
		}
		switch strings.ToLower(m[1]) {
		case "new-vote":
			return Command{Kind: NewVote, Name: arg}, true
		case "rename":
			return Command{Kind: Rename, Name: arg}, true
		case "set-owner":
			return Command{Kind: SetOwner, Owner: arg}, true
		default:
			return Command{Kind: Delete, Name: arg}, true
		}
	}

	return Command{}, false
}
