// Package contributions computes summary statistics over a contribution
// series. Everything here is pure: no I/O, deterministic for a given input.
package contributions

import (
	"math"
	"sort"
	"time"

	"github.com/caarlos0/contribgraph/internal/github"
)

// Summary of a contribution series.
type Summary struct {
	Username      string    `json:"username"`
	Total         int       `json:"total"`
	Today         int       `json:"today"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	HighScore     HighScore `json:"high_score"`
	Quartiles     *[4]int   `json:"quartiles,omitempty"`
}

// HighScore is the busiest day of the series. Ties keep the earliest day.
type HighScore struct {
	Count int       `json:"count"`
	Date  time.Time `json:"date"`
}

// Stats computes the Summary for the given series. Quartiles are not filled
// in here, they are only computed when asked for.
func Stats(c github.Contributions) Summary {
	summary := Summary{Username: c.Username}
	var run int
	for _, day := range c.Days {
		summary.Total += day.Count
		if day.Count == 0 {
			run = 0
			continue
		}
		run++
		if run > summary.LongestStreak {
			summary.LongestStreak = run
		}
		if day.Count > summary.HighScore.Count {
			summary.HighScore = HighScore{Count: day.Count, Date: day.Date}
		}
	}
	summary.CurrentStreak = run
	if n := len(c.Days); n > 0 {
		summary.Today = c.Days[n-1].Count
	}
	return summary
}

// Quartiles returns the three thresholds splitting the sorted non-zero day
// counts into four parts, plus the maximum count as the fourth value.
//
// Threshold k (k=1..3) is the linear interpolation between adjacent ranks at
// position k*(n-1)/4 of the ascending counts, rounded half up. An all-zero
// or empty series degenerates to [0 0 0 0].
func Quartiles(days []github.ContributionDay) [4]int {
	var counts []int
	for _, day := range days {
		if day.Count > 0 {
			counts = append(counts, day.Count)
		}
	}
	if len(counts) == 0 {
		return [4]int{}
	}
	sort.Ints(counts)
	n := len(counts)
	var q [4]int
	for k := 1; k <= 3; k++ {
		pos := float64(k) * float64(n-1) / 4
		lo := int(math.Floor(pos))
		v := float64(counts[lo])
		if lo+1 < n {
			v += (pos - float64(lo)) * float64(counts[lo+1]-counts[lo])
		}
		q[k-1] = int(math.Floor(v + 0.5))
	}
	q[3] = counts[n-1]
	return q
}
