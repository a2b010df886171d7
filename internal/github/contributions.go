package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/apex/log"
)

// ContributionDay is one day of the calendar.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Label string    `json:"label,omitempty"`
}

// Contributions is a contiguous daily series, oldest day first.
type Contributions struct {
	Username string            `json:"username"`
	Days     []ContributionDay `json:"days"`
}

// Total contributions over the whole series.
func (c Contributions) Total() int {
	var total int
	for _, day := range c.Days {
		total += day.Count
	}
	return total
}

const retryDelay = 500 * time.Millisecond

func (gh *GitHub) fetch(ctx context.Context, username string) (Contributions, error) {
	log := log.WithField("username", username)
	contribs, err := gh.fetchOnce(ctx, username)
	if errors.Is(err, ErrUpstream) {
		log.WithError(err).Warn("transient failure, retrying once")
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return Contributions{}, ctx.Err()
		}
		contribs, err = gh.fetchOnce(ctx, username)
	}
	if err != nil {
		fetches.WithLabelValues("error").Inc()
		return Contributions{}, err
	}
	fetches.WithLabelValues("success").Inc()
	return contribs, nil
}

func (gh *GitHub) fetchOnce(ctx context.Context, username string) (Contributions, error) {
	target := fmt.Sprintf("%s/users/%s/contributions", gh.url, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Contributions{}, err
	}
	req.Header.Set("User-Agent", "contribgraph")

	resp, err := gh.client.Do(req)
	if err != nil {
		return Contributions{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Contributions{}, ErrUserNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return Contributions{}, ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return Contributions{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return Contributions{}, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	days, err := parseCalendar(resp.Body)
	if err != nil {
		return Contributions{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(days) == 0 {
		return Contributions{}, ErrUserNotFound
	}

	return Contributions{
		Username: username,
		Days:     normalize(days),
	}, nil
}

// normalize sorts the series ascending, drops duplicate dates and zero-fills
// gaps so the result is contiguous.
func normalize(days []ContributionDay) []ContributionDay {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	out := make([]ContributionDay, 0, len(days))
	for _, day := range days {
		if len(out) == 0 {
			out = append(out, day)
			continue
		}
		last := out[len(out)-1].Date
		if day.Date.Equal(last) {
			continue
		}
		for next := last.AddDate(0, 0, 1); next.Before(day.Date); next = next.AddDate(0, 0, 1) {
			out = append(out, ContributionDay{Date: next})
		}
		out = append(out, day)
	}
	return out
}
