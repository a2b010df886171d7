package github

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// parseCalendar extracts the daily series from the contributions page.
//
// The page lays the calendar out as td.ContributionCalendar-day cells holding
// the date, with the human-readable count living in a separate tool-tip
// element referencing the cell by id.
func parseCalendar(r io.Reader) ([]ContributionDay, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	tooltips := map[string]string{}
	var cells []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "tool-tip":
				if id := attr(n, "for"); id != "" {
					tooltips[id] = strings.TrimSpace(text(n))
				}
			case n.Data == "td" && strings.Contains(attr(n, "class"), "ContributionCalendar-day"):
				cells = append(cells, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var days []ContributionDay
	for _, cell := range cells {
		date, err := time.Parse("2006-01-02", attr(cell, "data-date"))
		if err != nil {
			continue
		}
		label := tooltips[attr(cell, "id")]
		days = append(days, ContributionDay{
			Date:  date,
			Count: parseCount(label),
			Label: label,
		})
	}
	return days, nil
}

// parseCount reads the leading number out of tooltip text like
// "7 contributions on September 1st." or "No contributions on July 14th.".
func parseCount(label string) int {
	if label == "" || strings.HasPrefix(label, "No contribution") {
		return 0
	}
	count, err := strconv.Atoi(strings.Fields(label)[0])
	if err != nil {
		return 0
	}
	return count
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(text(c))
	}
	return sb.String()
}
