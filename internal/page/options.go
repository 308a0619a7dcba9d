package page

import (
	"fmt"
	"strings"
	"time"
)

// Variant selects how the contact form reacts to submission.
type Variant string

const (
	// VariantAcknowledge prevents navigation and shows a static acknowledgment.
	VariantAcknowledge Variant = "acknowledge"
	// VariantStatic renders the form with no submit handler.
	VariantStatic Variant = "static"
)

// ParseVariant accepts the variant names case-insensitively. Empty selects
// VariantAcknowledge.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantAcknowledge, nil
	case VariantAcknowledge, VariantStatic:
		return v, nil
	default:
		return "", fmt.Errorf("page: unknown contact form variant %q", s)
	}
}

// Options tunes a render. The zero value renders the acknowledge variant for
// the current year in English. Unrecognized variants also render as acknowledge.
type Options struct {
	Variant Variant
	Year    int
	BaseURL string
	Lang    string
	// AssetsPrefix is prepended to stylesheet paths, "/assets" by default.
	AssetsPrefix string
}

func (o Options) withDefaults() Options {
	if v, err := ParseVariant(string(o.Variant)); err == nil {
		o.Variant = v
	} else {
		o.Variant = VariantAcknowledge
	}
	if o.Year == 0 {
		o.Year = time.Now().Year()
	}
	if strings.TrimSpace(o.Lang) == "" {
		o.Lang = "en"
	}
	if o.AssetsPrefix == "" {
		o.AssetsPrefix = "/assets"
	}
	o.AssetsPrefix = strings.TrimRight(o.AssetsPrefix, "/")
	return o
}
