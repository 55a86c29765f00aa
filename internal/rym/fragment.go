package rym

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// Candidate is one search hit: a year-bearing text snippet paired with the
// title text that precedes it. Some year nodes have no adjacent title; those
// keep HasTitle false and are skipped during matching.
type Candidate struct {
	Title    string
	HasTitle bool
	YearText string
}

// Fragment is the parsed search-results region of one results page.
type Fragment struct {
	Candidates []Candidate
}

// ParseResults parses the HTML of the search-results region into candidates.
// Every span whose text carries a four-digit year becomes a candidate; its
// title is the link text of the nearest preceding sibling span.
func ParseResults(fragment string) (*Fragment, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	parsed := &Fragment{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			text := nodeText(n)
			if yearPattern.MatchString(text) {
				title, ok := precedingTitle(n)
				parsed.Candidates = append(parsed.Candidates, Candidate{
					Title:    title,
					HasTitle: ok,
					YearText: text,
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return parsed, nil
}

// precedingTitle finds the link text of the nearest preceding sibling span.
func precedingTitle(n *html.Node) (string, bool) {
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type != html.ElementNode || sib.Data != "span" {
			continue
		}
		if link := firstElement(sib, "a"); link != nil {
			if title := strings.TrimSpace(nodeText(link)); title != "" {
				return title, true
			}
		}
		return "", false
	}
	return "", false
}

func firstElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
