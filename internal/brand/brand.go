package brand

import (
	"fmt"
	"strconv"
	"strings"
)

// Role names a color slot in the palette.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
	RoleDark       Role = "dark"
)

// Palette is the fixed set of brand colors. Values are #RRGGBB or #RGB.
type Palette struct {
	Primary    string `yaml:"primary" validate:"omitempty,hexrgb"`
	Accent     string `yaml:"accent" validate:"omitempty,hexrgb"`
	Background string `yaml:"background" validate:"omitempty,hexrgb"`
	Dark       string `yaml:"dark" validate:"omitempty,hexrgb"`
}

// Default is the Rally Point palette.
var Default = Palette{
	Primary:    "#164C3A",
	Accent:     "#C0D9CD",
	Background: "#FFFFFF",
	Dark:       "#0F172A",
}

const (
	Name     = "Rally Point Family & Wellness"
	Monogram = "RP"
	Tagline  = "Client-centered mental health care"
)

// Merge returns p with empty roles filled from fallback.
func (p Palette) Merge(fallback Palette) Palette {
	out := p
	if strings.TrimSpace(out.Primary) == "" {
		out.Primary = fallback.Primary
	}
	if strings.TrimSpace(out.Accent) == "" {
		out.Accent = fallback.Accent
	}
	if strings.TrimSpace(out.Background) == "" {
		out.Background = fallback.Background
	}
	if strings.TrimSpace(out.Dark) == "" {
		out.Dark = fallback.Dark
	}
	return out
}

// Color returns the hex value for role, or the primary color for unknown roles.
func (p Palette) Color(role Role) string {
	switch role {
	case RoleAccent:
		return p.Accent
	case RoleBackground:
		return p.Background
	case RoleDark:
		return p.Dark
	default:
		return p.Primary
	}
}

// Tint renders role as an rgba() value with the given alpha, e.g. the 3% primary
// wash behind alternating sections.
func (p Palette) Tint(role Role, alpha float64) string {
	r, g, b, err := parseHex(p.Color(role))
	if err != nil {
		return p.Color(role)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// CSSVars renders the palette as custom properties for a :root rule.
func (p Palette) CSSVars() string {
	var sb strings.Builder
	sb.WriteString(":root{")
	for _, v := range []struct {
		name  string
		value string
	}{
		{"--brand-primary", p.Primary},
		{"--brand-accent", p.Accent},
		{"--brand-background", p.Background},
		{"--brand-dark", p.Dark},
	} {
		sb.WriteString(v.name)
		sb.WriteByte(':')
		sb.WriteString(v.value)
		sb.WriteByte(';')
	}
	sb.WriteString("}")
	return sb.String()
}

// ValidHex reports whether s is an opaque #RRGGBB or #RGB color, the forms
// Tint can derive a wash from.
func ValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	_, _, _, err := parseHex(s)
	return err == nil
}

func parseHex(s string) (uint8, uint8, uint8, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("brand: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("brand: invalid hex color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
