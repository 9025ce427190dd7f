// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import "github.com/danielhkuo/lunch-bot/models"

// Average returns the cached average, or the mean of all scores.
// It returns ErrEmptyVoteSet when nobody has voted.
func Average(r models.Restaurant) (float64, error) {
	if len(r.Votes) == 0 {
		return 0, ErrEmptyVoteSet
	}
	if r.Average != nil {
		return *r.Average, nil
	}
	return mean(r.Votes.Scores())
}

// mean calculates the arithmetic mean
func mean(values []int) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyVoteSet
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values)), nil
}
