package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func heatmap(counts ...int) Heatmap {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC) // a sunday
	h := Heatmap{
		Background:   "#ebedf0",
		Primary:      "#40c463",
		Height:       110,
		FontSize:     12,
		ShowMonths:   true,
		ShowWeekdays: true,
		Thresholds:   [4]int{1, 2, 3, 4},
	}
	for i, count := range counts {
		h.Days = append(h.Days, Day{Date: start.AddDate(0, 0, i), Count: count})
	}
	return h
}

func TestRenderDeterministic(t *testing.T) {
	is := is.New(t)
	h := heatmap(0, 1, 2, 3, 4, 5, 0, 1)
	is.Equal(h.String(), h.String())
}

func TestRenderTransitionHueChangesOutput(t *testing.T) {
	is := is.New(t)
	plain := heatmap(0, 3)
	hued := heatmap(0, 3)
	hued.TransitionHue = true
	is.True(plain.String() != hued.String())
}

func TestRenderBasics(t *testing.T) {
	is := is.New(t)
	got := heatmap(0, 1, 2).String()
	is.True(strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg"`))
	is.Equal(3, strings.Count(got, "<rect"))
	is.True(strings.Contains(got, "<title>2023-01-01: 0 contributions</title>"))
	is.True(strings.Contains(got, ">Mon</text>"))
}

func TestRenderMonthLabels(t *testing.T) {
	is := is.New(t)
	counts := make([]int, 60)
	got := heatmap(counts...).String()
	is.True(strings.Contains(got, ">Jan</text>"))
	is.True(strings.Contains(got, ">Feb</text>"))
}

func TestRenderLabelsOptional(t *testing.T) {
	is := is.New(t)
	h := heatmap(1, 2, 3)
	h.ShowMonths = false
	h.ShowWeekdays = false
	got := h.String()
	is.True(!strings.Contains(got, "<text"))
}

func TestRenderHoverLabel(t *testing.T) {
	is := is.New(t)
	h := heatmap(5)
	h.Days[0].Label = "5 contributions on January 1st."
	is.True(strings.Contains(h.String(), "<title>5 contributions on January 1st.</title>"))
}

func TestRenderEmptySeries(t *testing.T) {
	is := is.New(t)
	h := Heatmap{Background: "#ebedf0", Primary: "#40c463", Height: 110, FontSize: 12}
	is.True(strings.HasPrefix(h.String(), "<svg"))
}

func TestWeekAlignment(t *testing.T) {
	is := is.New(t)
	// series starting on a wednesday must land on row 3 of the first column
	h := Heatmap{
		Background: "#ebedf0",
		Primary:    "#40c463",
		Height:     70,
		FontSize:   12,
		Days: []Day{
			{Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), Count: 1},
		},
	}
	// cell size is 70/7=10, so y = 3*10
	is.True(strings.Contains(h.String(), `y="30"`))
}

func TestBuckets(t *testing.T) {
	is := is.New(t)
	h := Heatmap{Thresholds: [4]int{2, 4, 6, 8}}
	is.Equal(0, h.bucket(0))
	is.Equal(1, h.bucket(1))
	is.Equal(1, h.bucket(2))
	is.Equal(2, h.bucket(3))
	is.Equal(3, h.bucket(5))
	is.Equal(4, h.bucket(7))
	is.Equal(4, h.bucket(100))
}

func TestShades(t *testing.T) {
	is := is.New(t)
	plain := shades("#ebedf0", "#40c463", false)
	is.Equal(5, len(plain))
	// non-zero shades all carry the primary hue when the transition is off
	for _, s := range plain[1:] {
		is.True(strings.HasPrefix(s, "hsl(136"))
	}
	hued := shades("#ebedf0", "#40c463", true)
	is.True(plain[1] != hued[1])
	// endpoints always meet the configured colors
	is.Equal(plain[0], hued[0])
	is.Equal(plain[4], hued[4])
}

func TestShadesBadColorFallsBack(t *testing.T) {
	is := is.New(t)
	got := shades("nope", "#40c463", false)
	is.Equal("nope", got[0])
	is.Equal("hsl(0, 0%, 20%)", got[4])
}

func TestHexToHSL(t *testing.T) {
	is := is.New(t)
	h, s, l, ok := hexToHSL("#ffffff")
	is.True(ok)
	is.Equal(0.0, h)
	is.Equal(0.0, s)
	is.Equal(1.0, l)

	_, _, _, ok = hexToHSL("#xyz")
	is.True(!ok)
}

func TestTextWidth(t *testing.T) {
	is := is.New(t)
	is.True(textWidth("Wed", 12) > 0)
	is.True(textWidth("January", 12) > textWidth("Jan", 12))
	is.Equal(textWidth("Mon", 12), textWidth("Mon", 12))
}
