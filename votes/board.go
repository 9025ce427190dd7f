// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhkuo/lunch-bot/models"
)

var (
	ErrNoActiveVote  = errors.New("no active vote")
	ErrAlreadyActive = errors.New("a vote is already active")
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("restaurant not found")
	ErrEmptyVoteSet  = errors.New("no votes cast")
)

// DefaultValidFor is how long a new vote stays open
const DefaultValidFor = 60 * time.Minute

// Entry is a named restaurant as returned by List and Rank
type Entry struct {
	Name       string
	Restaurant models.Restaurant
}

// Board holds every known restaurant in insertion order.
// It is not safe for concurrent use.
type Board struct {
	validFor time.Duration
	now      func() time.Time

	names   []string
	records map[string]*models.Restaurant
}

// NewBoard creates an empty board whose votes stay open for validFor
func NewBoard(validFor time.Duration) *Board {
	if validFor <= 0 {
		validFor = DefaultValidFor
	}
	return &Board{
		validFor: validFor,
		now:      time.Now,
		records:  make(map[string]*models.Restaurant),
	}
}

// SetClock replaces the time source
func (b *Board) SetClock(now func() time.Time) {
	b.now = now
}

// ValidFor returns the length of the voting window
func (b *Board) ValidFor() time.Duration {
	return b.validFor
}

// Len returns the number of stored restaurants
func (b *Board) Len() int {
	return len(b.names)
}

// Insert appends an existing record, as read back from storage
func (b *Board) Insert(name string, r models.Restaurant) error {
	if b.Exists(name) {
		return ErrDuplicateName
	}
	rec := r.Clone()
	b.names = append(b.names, name)
	b.records[name] = &rec
	return nil
}

// Get returns a copy of the named restaurant
func (b *Board) Get(name string) (models.Restaurant, bool) {
	rec, ok := b.records[name]
	if !ok {
		return models.Restaurant{}, false
	}
	return rec.Clone(), true
}

// Exists reports whether a restaurant with this name is stored
func (b *Board) Exists(name string) bool {
	_, ok := b.records[name]
	return ok
}

// Active returns the first restaurant, in insertion order, whose window is
// still open
func (b *Board) Active() (string, bool) {
	now := b.now()
	for _, name := range b.names {
		if b.open(b.records[name], now) {
			return name, true
		}
	}
	return "", false
}

func (b *Board) open(r *models.Restaurant, now time.Time) bool {
	return now.Sub(r.CreatedAt) < b.validFor
}

// RemainingMinutes returns the whole minutes left on the named vote.
// Elapsed time is truncated to whole minutes before subtracting.
func (b *Board) RemainingMinutes(name string) int {
	rec, ok := b.records[name]
	if !ok {
		return 0
	}
	elapsed := int(b.now().Sub(rec.CreatedAt).Minutes())
	return int(b.validFor.Minutes()) - elapsed
}

// Create opens a new vote
func (b *Board) Create(name string) error {
	if _, ok := b.Active(); ok {
		return ErrAlreadyActive
	}
	if b.Exists(name) {
		return ErrDuplicateName
	}
	b.names = append(b.names, name)
	b.records[name] = &models.Restaurant{
		CreatedAt: b.now(),
		Votes:     models.Votes{},
	}
	return nil
}

// Rename moves the active vote to newName and returns its previous name.
// The renamed record goes to the end of the insertion order.
func (b *Board) Rename(newName string) (string, error) {
	current, ok := b.Active()
	if !ok {
		return "", ErrNoActiveVote
	}
	if b.Exists(newName) {
		return current, ErrDuplicateName
	}
	rec := b.records[current]
	b.remove(current)
	b.names = append(b.names, newName)
	b.records[newName] = rec
	return current, nil
}

// SetOwner records who picked the active restaurant
func (b *Board) SetOwner(owner string) (string, error) {
	current, ok := b.Active()
	if !ok {
		return "", ErrNoActiveVote
	}
	b.records[current].Owner = &owner
	return current, nil
}

// Vote stores voter's score on the active restaurant, replacing any earlier
// score from the same voter
func (b *Board) Vote(voter string, score int) (string, error) {
	current, ok := b.Active()
	if !ok {
		return "", ErrNoActiveVote
	}
	rec := b.records[current]
	rec.Votes = rec.Votes.Set(voter, score)
	rec.Average = nil
	return current, nil
}

// Delete removes a restaurant, active or not
func (b *Board) Delete(name string) error {
	if !b.Exists(name) {
		return ErrNotFound
	}
	b.remove(name)
	return nil
}

func (b *Board) remove(name string) {
	delete(b.records, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			return
		}
	}
}

// List returns all restaurants in insertion order
func (b *Board) List() []Entry {
	entries := make([]Entry, 0, len(b.names))
	for _, name := range b.names {
		entries = append(entries, Entry{Name: name, Restaurant: b.records[name].Clone()})
	}
	return entries
}

// Rank returns all restaurants by descending average. Restaurants without
// votes follow the rated ones. Equal averages keep insertion order.
// Rank fills in the cached average of every rated restaurant.
func (b *Board) Rank() []Entry {
	type ranked struct {
		entry Entry
		avg   float64
		rated bool
	}

	rows := make([]ranked, 0, len(b.names))
	for _, name := range b.names {
		rec := b.records[name]
		avg, err := Average(*rec)
		rated := err == nil
		if rated && rec.Average == nil {
			cached := avg
			rec.Average = &cached
		}
		rows = append(rows, ranked{
			entry: Entry{Name: name, Restaurant: rec.Clone()},
			avg:   avg,
			rated: rated,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		x, y := rows[i], rows[j]
		if x.rated != y.rated {
			return x.rated
		}
		return x.avg > y.avg
	})

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.entry
	}
	return entries
}

// Clone returns an independent copy sharing the window and clock
func (b *Board) Clone() *Board {
	out := &Board{
		validFor: b.validFor,
		now:      b.now,
		names:    make([]string, len(b.names)),
		records:  make(map[string]*models.Restaurant, len(b.records)),
	}
	copy(out.names, b.names)
	for name, rec := range b.records {
		c := rec.Clone()
		out.records[name] = &c
	}
	return out
}
