package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// TimestampLayout is the on-disk format of Restaurant.CreatedAt
const TimestampLayout = time.RFC3339

// Marshal encodes v as compact JSON without escaping <, > and &, so voter
// mentions like <@U123> are stored verbatim
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Domain types

// Restaurant is one voting candidate and the scores it collected
type Restaurant struct {
	CreatedAt time.Time
	Owner     *string
	Votes     Votes
	Average   *float64 // cached; nil when not computed
}

// Vote is a single voter's score
type Vote struct {
	Voter string
	Score int
}

// Votes keeps one score per voter, in the order voters first voted
type Votes []Vote

// Get returns the score recorded for voter
func (v Votes) Get(voter string) (int, bool) {
	for _, vote := range v {
		if vote.Voter == voter {
			return vote.Score, true
		}
	}
	return 0, false
}

// Set overwrites the voter's score in place, or appends a new entry
func (v Votes) Set(voter string, score int) Votes {
	for i := range v {
		if v[i].Voter == voter {
			v[i].Score = score
			return v
		}
	}
	return append(v, Vote{Voter: voter, Score: score})
}

// Scores returns the raw score values
func (v Votes) Scores() []int {
	scores := make([]int, len(v))
	for i, vote := range v {
		scores[i] = vote.Score
	}
	return scores
}

// Clone returns a copy that shares no memory with v
func (v Votes) Clone() Votes {
	if v == nil {
		return Votes{}
	}
	out := make(Votes, len(v))
	copy(out, v)
	return out
}

// Clone returns a deep copy of the restaurant
func (r Restaurant) Clone() Restaurant {
	out := r
	if r.Owner != nil {
		owner := *r.Owner
		out.Owner = &owner
	}
	if r.Average != nil {
		avg := *r.Average
		out.Average = &avg
	}
	out.Votes = r.Votes.Clone()
	return out
}

// MarshalJSON encodes votes as an object keyed by voter, keeping vote order
func (v Votes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, vote := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := Marshal(vote.Voter)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(vote.Score))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a voter object in document order
func (v *Votes) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("votes: invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		*v = Votes{}
		return nil
	}
	if !result.IsObject() {
		return errors.New("votes: expected an object")
	}

	out := Votes{}
	var err error
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("votes: score for %s is not a number", key.String())
			return false
		}
		out = out.Set(key.String(), int(value.Int()))
		return true
	})
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type restaurantJSON struct {
	Timestamp string   `json:"timestamp"`
	Owner     *string  `json:"owner"`
	Votes     Votes    `json:"votes"`
	Average   *float64 `json:"average,omitempty"`
}

func (r Restaurant) MarshalJSON() ([]byte, error) {
	votes := r.Votes
	if votes == nil {
		votes = Votes{}
	}
	return Marshal(restaurantJSON{
		Timestamp: r.CreatedAt.Format(TimestampLayout),
		Owner:     r.Owner,
		Votes:     votes,
		Average:   r.Average,
	})
}

func (r *Restaurant) UnmarshalJSON(data []byte) error {
	var raw restaurantJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	createdAt, err := time.Parse(TimestampLayout, raw.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw.Timestamp, err)
	}
	if raw.Votes == nil {
		raw.Votes = Votes{}
	}
	*r = Restaurant{
		CreatedAt: createdAt,
		Owner:     raw.Owner,
		Votes:     raw.Votes,
		Average:   raw.Average,
	}
	return nil
}

// Chat types

// Event is an inbound chat message
type Event struct {
	Text    string `json:"text"`
	Channel string `json:"channel"`
	User    string `json:"user"`
	Token   string `json:"token,omitempty"`
}

// Message is an outbound reply: plain text, cards, or both
type Message struct {
	Text        string `json:"text,omitempty"`
	Attachments []Card `json:"attachments,omitempty"`
}

// Card is a colored summary attachment
type Card struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Color  string `json:"color,omitempty"`
	Footer string `json:"footer,omitempty"`
}

// TextMessage builds a plain text reply
func TextMessage(text string) *Message {
	return &Message{Text: text}
}

// Response types

type RestaurantsResponse struct {
	Sort        string `json:"sort"`
	Restaurants []Card `json:"restaurants"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
