package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/caarlos0/httperr"
	"github.com/gorilla/mux"
)

const (
	defaultBackground = "#ebedf0"
	defaultPrimary    = "#40c463"
	defaultHeight     = 110
	defaultFontSize   = 12
)

// GraphParams are the recognized graph query parameters, filled with their
// documented defaults.
type GraphParams struct {
	Username      string
	Background    string
	Primary       string
	Height        int
	FontSize      int
	ShowMonths    bool
	ShowWeekdays  bool
	TransitionHue bool
}

func extractGraphParams(r *http.Request) (GraphParams, error) {
	params := GraphParams{
		Username:     mux.Vars(r)["username"],
		Background:   defaultBackground,
		Primary:      defaultPrimary,
		Height:       defaultHeight,
		FontSize:     defaultFontSize,
		ShowMonths:   true,
		ShowWeekdays: true,
	}
	query := r.URL.Query()
	if v := query.Get("background-color"); v != "" {
		params.Background = v
	}
	if v := query.Get("primary-color"); v != "" {
		params.Primary = v
	}
	var err error
	if params.Height, err = intParam(query.Get("svg-height"), params.Height); err != nil {
		return params, invalidParam("svg-height", err)
	}
	if params.FontSize, err = intParam(query.Get("font-size"), params.FontSize); err != nil {
		return params, invalidParam("font-size", err)
	}
	if params.ShowMonths, err = boolParam(query.Get("show-months"), params.ShowMonths); err != nil {
		return params, invalidParam("show-months", err)
	}
	if params.ShowWeekdays, err = boolParam(query.Get("show-weekdays"), params.ShowWeekdays); err != nil {
		return params, invalidParam("show-weekdays", err)
	}
	if params.TransitionHue, err = boolParam(query.Get("transition-hue"), params.TransitionHue); err != nil {
		return params, invalidParam("transition-hue", err)
	}
	return params, nil
}

func intParam(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func boolParam(v string, fallback bool) (bool, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

func invalidParam(name string, err error) error {
	return httperr.Wrap(fmt.Errorf("invalid %s: %v", name, err), http.StatusBadRequest)
}

// contributionsKey is the cache key for a username. The fetch window is
// fixed, so the username is the only parameter that changes the payload.
func contributionsKey(username string) string {
	return "contributions:" + username
}
