package controller

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/apex/log"
	"github.com/caarlos0/contribgraph/internal/cache"
	"github.com/caarlos0/contribgraph/internal/chart"
	"github.com/caarlos0/contribgraph/internal/contributions"
	"github.com/caarlos0/contribgraph/internal/github"
	"github.com/caarlos0/httperr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "contribgraph",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "contribution series cache lookups by result",
}, []string{"result"})

// GetGraph returns the HTML fragment embedding the SVG graph for the given
// username.
func GetGraph(fsys fs.FS, gh *github.GitHub, cache cache.Cache) http.Handler {
	graphTemplate, err := template.ParseFS(fsys, graph)
	if err != nil {
		panic(err)
	}

	return httperr.NewF(func(w http.ResponseWriter, r *http.Request) error {
		params, err := extractGraphParams(r)
		if err != nil {
			return err
		}
		contribs, err := getContributions(r.Context(), gh, cache, params.Username)
		if err != nil {
			return httpError(err)
		}
		quartiles := contributions.Quartiles(contribs.Days)

		writeWidgetHeaders(w, params.Username)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return graphTemplate.Execute(w, map[string]interface{}{
			"Username":  params.Username,
			"SVG":       template.HTML(heatmap(contribs, params, quartiles).String()),
			"Quartiles": quartiles,
		})
	})
}

// GetGraphSVG returns the raw SVG document for the given username.
func GetGraphSVG(gh *github.GitHub, cache cache.Cache) http.Handler {
	return httperr.NewF(func(w http.ResponseWriter, r *http.Request) error {
		params, err := extractGraphParams(r)
		if err != nil {
			return err
		}
		contribs, err := getContributions(r.Context(), gh, cache, params.Username)
		if err != nil {
			return httpError(err)
		}

		writeWidgetHeaders(w, params.Username)
		w.Header().Set("Content-Type", "image/svg+xml")
		heatmap(contribs, params, contributions.Quartiles(contribs.Days)).Render(w)
		return nil
	})
}

func heatmap(contribs github.Contributions, params GraphParams, quartiles [4]int) chart.Heatmap {
	days := make([]chart.Day, 0, len(contribs.Days))
	for _, day := range contribs.Days {
		days = append(days, chart.Day{
			Date:  day.Date,
			Count: day.Count,
			Label: day.Label,
		})
	}
	return chart.Heatmap{
		Days:          days,
		Background:    params.Background,
		Primary:       params.Primary,
		Height:        params.Height,
		FontSize:      params.FontSize,
		ShowMonths:    params.ShowMonths,
		ShowWeekdays:  params.ShowWeekdays,
		TransitionHue: params.TransitionHue,
		Thresholds:    quartiles,
	}
}

// getContributions returns the cached series for username, fetching and
// caching it on a miss. Cache failures only log: a broken cache degrades to
// fetching every time, it never fails the request.
func getContributions(ctx context.Context, gh *github.GitHub, store cache.Cache, username string) (github.Contributions, error) {
	log := log.WithField("username", username)
	key := contributionsKey(username)

	var cached github.Contributions
	if err := store.Get(key, &cached); err == nil {
		cacheLookups.WithLabelValues("hit").Inc()
		log.Debug("using cached contributions")
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.WithError(err).Warn("cache read failed")
	}
	cacheLookups.WithLabelValues("miss").Inc()

	defer log.Trace("fetch_contributions").Stop(nil)
	contribs, err := gh.Contributions(ctx, username)
	if err != nil {
		return github.Contributions{}, err
	}
	if err := store.Put(key, contribs); err != nil {
		log.WithError(err).Error("failed to cache contributions")
	}
	return contribs, nil
}

func httpError(err error) error {
	switch {
	case errors.Is(err, github.ErrUserNotFound):
		return httperr.Wrap(err, http.StatusNotFound)
	case errors.Is(err, github.ErrRateLimited):
		return httperr.Wrap(err, http.StatusTooManyRequests)
	default:
		return httperr.Wrap(err, http.StatusBadGateway)
	}
}

func writeWidgetHeaders(w http.ResponseWriter, username string) {
	w.Header().Set("Widget-Title", "GitHub Contributions")
	w.Header().Set("Widget-Title-URL", "https://github.com/"+username)
	w.Header().Set("Widget-Content-Type", "html")
}
