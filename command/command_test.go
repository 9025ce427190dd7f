package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected Command
		ok       bool
	}{
		{"list", Command{Kind: List}, true},
		{"LIST", Command{Kind: List}, true},
		{"  rank  ", Command{Kind: Rank}, true},
		{"Current", Command{Kind: Current}, true},
		{"help", Command{Kind: Help}, true},
		{"new-vote Pizza Place", Command{Kind: NewVote, Name: "Pizza Place"}, true},
		{"NEW-VOTE Pizza Place", Command{Kind: NewVote, Name: "Pizza Place"}, true},
		{"rename Pizza Palace", Command{Kind: Rename, Name: "Pizza Palace"}, true},
		{"set-owner Alice", Command{Kind: SetOwner, Owner: "Alice"}, true},
		{"delete Old Diner", Command{Kind: Delete, Name: "Old Diner"}, true},
		{"vote 0", Command{Kind: Vote, Score: 0}, true},
		{"vote 7", Command{Kind: Vote, Score: 7}, true},
		{"Vote 9", Command{Kind: Vote, Score: 9}, true},

		{"vote 10", Command{}, false},
		{"vote -1", Command{}, false},
		{"vote seven", Command{}, false},
		{"vote", Command{}, false},
		{"new-vote", Command{}, false},
		{"new-vote    ", Command{}, false},
		{"list please", Command{}, false},
		{"what's for lunch?", Command{}, false},
		{"", Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Parse(tt.text)
			if ok != tt.ok {
				t.Fatalf("Parse(%q): expected ok=%v, got %v", tt.text, tt.ok, ok)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q): expected %+v, got %+v", tt.text, tt.expected, got)
			}
		})
	}
}

func TestKindMutates(t *testing.T) {
	mutating := map[Kind]bool{
		NewVote: true, Rename: true, SetOwner: true, Vote: true, Delete: true,
	}
	for _, k := range []Kind{Help, List, Rank, Current, NewVote, Rename, SetOwner, Vote, Delete} {
		if k.Mutates() != mutating[k] {
			t.Errorf("%s: expected Mutates()=%v", k, mutating[k])
		}
	}
}
