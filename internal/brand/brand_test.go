package brand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTintDerivesFromPalette(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rgba(22,76,58,0.03)", Default.Tint(RolePrimary, 0.03))
	require.Equal(t, "rgba(192,217,205,1)", Default.Tint(RoleAccent, 2))
	require.Equal(t, "rgba(255,255,255,0)", Default.Tint(RoleBackground, -1))
}

func TestTintShortHex(t *testing.T) {
	t.Parallel()

	p := Palette{Primary: "#abc"}
	require.Equal(t, "rgba(170,187,204,0.5)", p.Tint(RolePrimary, 0.5))
}

func TestTintInvalidHexFallsBackToRaw(t *testing.T) {
	t.Parallel()

	p := Palette{Primary: "green"}
	require.Equal(t, "green", p.Tint(RolePrimary, 0.5))
}

func TestMergeFillsEmptyRoles(t *testing.T) {
	t.Parallel()

	got := Palette{Accent: "#000000"}.Merge(Default)
	require.Equal(t, Default.Primary, got.Primary)
	require.Equal(t, "#000000", got.Accent)
	require.Equal(t, Default.Dark, got.Dark)
}

func TestCSSVars(t *testing.T) {
	t.Parallel()

	css := Default.CSSVars()
	require.Contains(t, css, "--brand-primary:#164C3A;")
	require.Contains(t, css, "--brand-accent:#C0D9CD;")
}

func TestValidHex(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]bool{
		"#164C3A":   true,
		"#fff":      true,
		"#164C3A80": false,
		"#1a2b":     false,
		"164C3A":    false,
		"#zzz":      false,
		"":          false,
	} {
		require.Equal(t, want, ValidHex(s), s)
	}
}
