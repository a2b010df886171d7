// Package chart renders a contribution series as a calendar heat-map SVG.
package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/contribgraph/internal/chart/svg"
)

const (
	rows      = 7
	cellGap   = 2
	gutterPad = 4
)

// Day is one cell of the heat-map.
type Day struct {
	Date  time.Time
	Count int
	Label string
}

// Heatmap lays Days onto a weeks x 7 grid, one column per calendar week,
// and renders it to SVG. Identical inputs always render identical bytes.
type Heatmap struct {
	Days          []Day
	Background    string
	Primary       string
	Height        int
	FontSize      int
	ShowMonths    bool
	ShowWeekdays  bool
	TransitionHue bool
	Thresholds    [4]int
}

var weekdayLabels = []struct {
	row  int
	text string
}{
	{1, "Mon"},
	{3, "Wed"},
	{5, "Fri"},
}

// Render writes the SVG document to w.
func (h Heatmap) Render(w io.Writer) {
	top := 0
	if h.ShowMonths {
		top = h.FontSize + gutterPad
	}
	left := 0
	if h.ShowWeekdays {
		left = textWidth("Wed", h.FontSize) + 2*gutterPad
	}
	cell := (h.Height - top) / rows
	if cell < 1 {
		cell = 1
	}

	offset := 0
	if len(h.Days) > 0 {
		offset = int(h.Days[0].Date.Weekday())
	}
	columns := (offset + len(h.Days) + rows - 1) / rows
	width := left + columns*cell

	palette := shades(h.Background, h.Primary, h.TransitionHue)

	svg.SVG().
		Attr("width", px(width)).
		Attr("height", px(h.Height)).
		Attr("viewBox", fmt.Sprintf("0 0 %d %d", width, h.Height)).
		ContentFunc(func(w io.Writer) {
			h.renderCells(w, palette, left, top, cell, offset)
			if h.ShowMonths {
				h.renderMonths(w, left, cell, offset, width)
			}
			if h.ShowWeekdays {
				h.renderWeekdays(w, left, top, cell)
			}
		}).
		Render(w)
}

// String renders the SVG document to a string.
func (h Heatmap) String() string {
	var sb strings.Builder
	h.Render(&sb)
	return sb.String()
}

func (h Heatmap) renderCells(w io.Writer, palette [5]string, left, top, cell, offset int) {
	for i, day := range h.Days {
		col := (offset + i) / rows
		row := (offset + i) % rows
		label := day.Label
		if label == "" {
			label = fmt.Sprintf("%s: %d contributions", day.Date.Format("2006-01-02"), day.Count)
		}
		svg.Rect().
			Attr("x", px(left+col*cell)).
			Attr("y", px(top+row*cell)).
			Attr("width", px(cell-cellGap)).
			Attr("height", px(cell-cellGap)).
			Attr("rx", "2").
			Attr("fill", palette[h.bucket(day.Count)]).
			ContentFunc(func(w io.Writer) {
				svg.Title().Content(label).Render(w)
			}).
			Render(w)
	}
}

func (h Heatmap) renderMonths(w io.Writer, left, cell, offset, width int) {
	lastMonth := time.Month(0)
	lastCol := -1
	for i, day := range h.Days {
		month := day.Date.Month()
		if month == lastMonth {
			continue
		}
		lastMonth = month
		col := (offset + i) / rows
		if col == lastCol {
			continue
		}
		lastCol = col
		text := day.Date.Format("Jan")
		x := left + col*cell
		if x+textWidth(text, h.FontSize) > width {
			continue
		}
		svg.Text().
			Attr("x", px(x)).
			Attr("y", px(h.FontSize)).
			Attr("font-size", px(h.FontSize)).
			Attr("fill", "currentColor").
			Content(text).
			Render(w)
	}
}

func (h Heatmap) renderWeekdays(w io.Writer, left, top, cell int) {
	for _, label := range weekdayLabels {
		y := top + label.row*cell + (cell+h.FontSize)/2 - cellGap
		svg.Text().
			Attr("x", px(left-gutterPad-textWidth(label.text, h.FontSize))).
			Attr("y", px(y)).
			Attr("font-size", px(h.FontSize)).
			Attr("fill", "currentColor").
			Content(label.text).
			Render(w)
	}
}

// bucket classifies a count into one of the five shades: zero days take the
// background shade, the rest split by the quartile thresholds.
func (h Heatmap) bucket(count int) int {
	if count == 0 {
		return 0
	}
	b := 1
	for _, threshold := range h.Thresholds[:3] {
		if count > threshold {
			b++
		}
	}
	if b > 4 {
		b = 4
	}
	return b
}

func px(v int) string {
	return strconv.Itoa(v)
}
