// Package config resolves runtime settings from the environment. CLI flags
// override individual fields before Validate runs.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/text/language"

	"rallypointwellness.com/site/internal/page"
)

const (
	defaultPort = "8080"
	defaultLang = "en"
)

// Config holds process settings for serve, export and check.
type Config struct {
	Addr        string
	ContentPath string
	Dev         bool
	Variant     page.Variant
	BaseURL     string
	Lang        string
	LogLevel    string
}

// ValidationError lists every invalid field.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, "; "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// FromEnv reads the process environment.
func FromEnv() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads settings through lookup. Listen address resolution prefers
// SITE_ADDR, then Cloud Run's PORT, else :8080.
func FromLookup(lookup func(string) (string, bool)) Config {
	addr := stringWithDefault(lookup, "SITE_ADDR", "")
	if addr == "" {
		addr = ":" + stringWithDefault(lookup, "PORT", defaultPort)
	}
	return Config{
		Addr:        addr,
		ContentPath: stringWithDefault(lookup, "SITE_CONTENT", ""),
		Dev:         boolWithDefault(lookup, "SITE_DEV", false),
		Variant:     page.Variant(stringWithDefault(lookup, "SITE_VARIANT", string(page.VariantAcknowledge))),
		BaseURL:     stringWithDefault(lookup, "SITE_BASE_URL", ""),
		Lang:        stringWithDefault(lookup, "SITE_LANG", defaultLang),
		LogLevel:    stringWithDefault(lookup, "LOG_LEVEL", "info"),
	}
}

// Validate normalizes the variant, language tag and base URL in place. Empty
// variant and language select the defaults.
func (c *Config) Validate() error {
	var invalid []string

	if strings.TrimSpace(c.Addr) == "" {
		invalid = append(invalid, "Addr: empty")
	}
	if v, err := page.ParseVariant(string(c.Variant)); err != nil {
		invalid = append(invalid, "Variant: "+err.Error())
	} else {
		c.Variant = v
	}
	if strings.TrimSpace(c.Lang) == "" {
		c.Lang = defaultLang
	}
	if tag, err := language.Parse(strings.TrimSpace(c.Lang)); err != nil {
		invalid = append(invalid, fmt.Sprintf("Lang: %q is not a BCP 47 tag", c.Lang))
	} else {
		c.Lang = tag.String()
	}
	if c.BaseURL = strings.TrimSpace(c.BaseURL); c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, fmt.Sprintf("BaseURL: %q must be an absolute http(s) URL", c.BaseURL))
		}
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// PageOptions maps the config onto render options for the current year.
func (c Config) PageOptions() page.Options {
	return page.Options{
		Variant: c.Variant,
		BaseURL: c.BaseURL,
		Lang:    c.Lang,
	}
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
