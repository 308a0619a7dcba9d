// Package audit checks rendered pages for in-page links whose targets are
// missing or ambiguous.
package audit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Report summarizes anchors found in a document.
type Report struct {
	// Links maps each in-page link target (without '#') to the number of links.
	Links map[string]int
	// IDs maps each element id to the number of elements carrying it.
	IDs map[string]int
	// Missing lists link targets with no element, sorted.
	Missing []string
	// Duplicated lists link targets carried by more than one element, sorted.
	Duplicated []string
}

// OK reports whether every link target resolves to exactly one element.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Duplicated) == 0
}

// Error is returned by Report.Err for a failed audit.
type Error struct {
	Missing    []string
	Duplicated []string
}

func (e *Error) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing targets: #"+strings.Join(e.Missing, ", #"))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicated targets: #"+strings.Join(e.Duplicated, ", #"))
	}
	return "audit: " + strings.Join(parts, "; ")
}

// Err returns nil for a clean report and an *Error otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Missing: r.Missing, Duplicated: r.Duplicated}
}

// Anchors tokenizes r and cross-checks href="#id" links against id attributes.
// The bare "#" placeholder is ignored.
func Anchors(r io.Reader) (Report, error) {
	rep := Report{Links: map[string]int{}, IDs: map[string]int{}}
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return Report{}, fmt.Errorf("audit: tokenize: %w", err)
			}
			rep.finish()
			return rep, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, a := range tok.Attr {
				switch a.Key {
				case "id":
					if id := strings.TrimSpace(a.Val); id != "" {
						rep.IDs[id]++
					}
				case "href":
					if tok.Data != "a" {
						continue
					}
					if target, ok := strings.CutPrefix(strings.TrimSpace(a.Val), "#"); ok && target != "" {
						rep.Links[target]++
					}
				}
			}
		}
	}
}

func (r *Report) finish() {
	for target := range r.Links {
		switch n := r.IDs[target]; {
		case n == 0:
			r.Missing = append(r.Missing, target)
		case n > 1:
			r.Duplicated = append(r.Duplicated, target)
		}
	}
	sort.Strings(r.Missing)
	sort.Strings(r.Duplicated)
}
