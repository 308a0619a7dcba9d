package nav

import "strings"

// Section is an anchor-addressable block of the page.
type Section struct {
	ID    string
	Label string
}

// Sections lists the page sections in render order.
var Sections = []Section{
	{ID: "services", Label: "Services"},
	{ID: "first-responders", Label: "First Responders"},
	{ID: "telehealth", Label: "Telehealth"},
	{ID: "insurance", Label: "Insurance"},
	{ID: "team", Label: "Team"},
	{ID: "forms", Label: "Forms & FAQs"},
	{ID: "contact", Label: "Contact"},
}

// Item is a navigation entry supplied by content.
type Item struct {
	Label string
	Href  string
}

// RenderedItem is a view model for the nav and footer link lists.
type RenderedItem struct {
	Href     string
	Label    string
	InPage   bool
	External bool
}

// IDs returns the section identifiers in order.
func IDs() []string {
	out := make([]string, 0, len(Sections))
	for _, s := range Sections {
		out = append(out, s.ID)
	}
	return out
}

// IsSection reports whether id names one of the page sections.
func IsSection(id string) bool {
	for _, s := range Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// IsAnchor reports whether href is an in-page link to a known section.
func IsAnchor(href string) bool {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	return ok && IsSection(id)
}

// Anchor returns the in-page href for a section id.
func Anchor(id string) string {
	return "#" + id
}

// Build renders items, marking in-page anchors and off-site links.
func Build(items []Item) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		href := strings.TrimSpace(it.Href)
		out = append(out, RenderedItem{
			Href:     href,
			Label:    it.Label,
			InPage:   strings.HasPrefix(href, "#"),
			External: strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://"),
		})
	}
	return out
}
