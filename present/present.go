// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package present renders restaurants as colored chat cards.
package present

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/lunch-bot/models"
	"github.com/danielhkuo/lunch-bot/votes"
)

// Card colors by average score band
const (
	ColorRed   = "#FF0000"
	ColorAmber = "#FF8C00"
	ColorGreen = "#00FF00"
)

// Render builds the summary card for one restaurant
func Render(name string, r models.Restaurant, now time.Time) models.Card {
	var b strings.Builder
	b.WriteString("Owned by: ")
	if r.Owner != nil {
		b.WriteString(*r.Owner)
	} else {
		b.WriteString("not set")
	}
	b.WriteString("\n")

	color := ""
	avg, err := RoundedAverage(r)
	switch {
	case errors.Is(err, votes.ErrEmptyVoteSet):
		b.WriteString("Average: no votes yet\n")
	default:
		b.WriteString("Average: " + strconv.FormatFloat(avg, 'f', 1, 64) + "\n")
		color = Color(avg)
	}

	b.WriteString("Votes:")
	for _, v := range r.Votes {
		b.WriteString("\n" + v.Voter + ": " + strconv.Itoa(v.Score))
	}

	return models.Card{
		Title:  name,
		Text:   b.String(),
		Color:  color,
		Footer: "opened " + humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
	}
}

// RenderAll renders entries in the given order
func RenderAll(entries []votes.Entry, now time.Time) []models.Card {
	cards := make([]models.Card, len(entries))
	for i, e := range entries {
		cards[i] = Render(e.Name, e.Restaurant, now)
	}
	return cards
}

// RoundedAverage returns the average rounded to one decimal place
func RoundedAverage(r models.Restaurant) (float64, error) {
	avg, err := votes.Average(r)
	if err != nil {
		return 0, err
	}
	return math.Round(avg*10) / 10, nil
}

// Color classifies an average into a band. Averages outside the 0-9 score
// range get no color.
func Color(avg float64) string {
	switch {
	case avg < 0 || avg > 9:
		return ""
	case avg < 4:
		return ColorRed
	case avg < 6:
		return ColorAmber
	default:
		return ColorGreen
	}
}
