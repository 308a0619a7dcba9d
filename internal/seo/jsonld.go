package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Practice describes the business for structured data.
type Practice struct {
	Name        string
	URL         string
	Description string
	Telephone   string
	Email       string
	AreaServed  string
	Image       string
}

// MedicalBusiness returns a schema.org MedicalBusiness payload.
func MedicalBusiness(p Practice) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "MedicalBusiness",
		"name":     p.Name,
	}
	if p.URL != "" {
		m["url"] = p.URL
	}
	if p.Image != "" {
		m["image"] = p.Image
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Telephone != "" {
		m["telephone"] = p.Telephone
	}
	if p.Email != "" {
		m["email"] = p.Email
	}
	if p.AreaServed != "" {
		m["areaServed"] = p.AreaServed
	}
	return m
}

// FAQEntry is one question and its plain-text answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQPage builds schema.org FAQPage. It returns nil for an empty list.
func FAQPage(entries []FAQEntry) map[string]any {
	if len(entries) == 0 {
		return nil
	}
	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}
