// Package github fetches public contribution calendars from GitHub.
package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/caarlos0/contribgraph/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

// ErrUserNotFound happens when the user does not exist on GitHub, or has no
// contribution calendar at all.
var ErrUserNotFound = errors.New("user not found")

// ErrRateLimited happens when GitHub throttles our requests.
var ErrRateLimited = errors.New("rate limited by github")

// ErrUpstream happens on transient upstream failures: network errors,
// timeouts, 5xx responses and pages we fail to parse.
var ErrUpstream = errors.New("github is unavailable")

const fetchTimeout = 10 * time.Second

var fetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "contribgraph",
	Subsystem: "github",
	Name:      "fetches_total",
	Help:      "total contribution calendar fetches by result",
}, []string{"result"})

// GitHub client.
type GitHub struct {
	url    string
	client *http.Client
	group  singleflight.Group
}

// New GitHub client.
func New(config config.Config) *GitHub {
	return &GitHub{
		url: config.GitHubURL,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Contributions returns the normalized contribution series for the given
// username. Concurrent calls for the same username share a single upstream
// fetch; the flight is detached from the callers, so one client hanging up
// only abandons its own wait, not everyone else's. The client timeout still
// bounds the detached fetch.
func (gh *GitHub) Contributions(ctx context.Context, username string) (Contributions, error) {
	if err := ctx.Err(); err != nil {
		return Contributions{}, err
	}
	ch := gh.group.DoChan(username, func() (interface{}, error) {
		return gh.fetch(context.WithoutCancel(ctx), username)
	})
	select {
	case <-ctx.Done():
		return Contributions{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Contributions{}, res.Err
		}
		if res.Shared {
			log.WithField("username", username).Debug("shared in-flight fetch")
		}
		return res.Val.(Contributions), nil
	}
}
