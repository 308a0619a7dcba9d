package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the head metadata for a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// Build fills OpenGraph and Twitter fields from the base values.
func Build(title, description, image, siteName, canonical string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   strings.TrimSpace(canonical),
		Robots:      "index,follow",
	}
	m.OG = OpenGraph{
		Title:       title,
		Description: description,
		Image:       image,
		Type:        "website",
		URL:         m.Canonical,
		SiteName:    siteName,
	}
	m.Twitter = Twitter{Card: "summary", Image: image}
	if image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}

// CanonicalURL joins a base URL with the root path.
func CanonicalURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/"
}
