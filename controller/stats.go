package controller

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/caarlos0/contribgraph/internal/cache"
	"github.com/caarlos0/contribgraph/internal/contributions"
	"github.com/caarlos0/contribgraph/internal/github"
	"github.com/caarlos0/httperr"
	"github.com/gorilla/mux"
)

// GetStats returns the statistics panel for the given username: HTML by
// default, JSON when the client asks for it.
func GetStats(fsys fs.FS, gh *github.GitHub, cache cache.Cache) http.Handler {
	statsTemplate, err := template.ParseFS(fsys, stats)
	if err != nil {
		panic(err)
	}

	return httperr.NewF(func(w http.ResponseWriter, r *http.Request) error {
		username := mux.Vars(r)["username"]
		showQuartiles := false
		if v := r.URL.Query().Get("show_quartiles"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return invalidParam("show_quartiles", err)
			}
			showQuartiles = parsed
		}

		contribs, err := getContributions(r.Context(), gh, cache, username)
		if err != nil {
			return httpError(err)
		}

		summary := contributions.Stats(contribs)
		if showQuartiles {
			quartiles := contributions.Quartiles(contribs.Days)
			summary.Quartiles = &quartiles
		}

		writeWidgetHeaders(w, username)
		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			w.Header().Set("Content-Type", "application/json")
			return json.NewEncoder(w).Encode(summary)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return statsTemplate.Execute(w, summary)
	})
}
