package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhoneHref(t *testing.T) {
	t.Parallel()

	require.Equal(t, "tel:+15555555555", PhoneHref("(555) 555-5555"))
	require.Equal(t, "tel:+15555555555", PhoneHref("+1-555-555-5555"))
	require.Equal(t, "", PhoneHref("call us"))
}

func TestMailtoHref(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mailto:hello@rallypointwellness.com", MailtoHref(" hello@rallypointwellness.com "))
	require.Equal(t, "", MailtoHref(""))
}

func TestCopyright(t *testing.T) {
	t.Parallel()

	require.Equal(t, "© 2026 Rally Point. All rights reserved.", Copyright(2026, "Rally Point"))
}

func TestInlineMarkdownStripsParagraph(t *testing.T) {
	t.Parallel()

	out, err := InlineMarkdown("Yes, **limited** availability")
	require.NoError(t, err)
	require.Equal(t, "Yes, <strong>limited</strong> availability", out)
}

func TestMarkdownSanitizes(t *testing.T) {
	t.Parallel()

	out, err := Markdown("hi <script>alert(1)</script>")
	require.NoError(t, err)
	require.NotContains(t, out, "<script")
}

func TestInlineMarkdownKeepsBlocks(t *testing.T) {
	t.Parallel()

	out, err := InlineMarkdown("one\n\ntwo")
	require.NoError(t, err)
	require.Equal(t, "<p>one</p>\n<p>two</p>", out)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	for src, want := range map[string]string{
		"Yes, **limited** availability—please inquire.": "Yes, limited availability—please inquire.",
		"See [our team](#team) or `call`.":               "See our team or call.",
		"line one\nline two\n\nsecond paragraph":         "line one line two second paragraph",
		"Visit https://portal.example today":             "Visit https://portal.example today",
		"hi <b>there</b>":                                "hi there",
		"":                                               "",
	} {
		require.Equal(t, want, PlainText(src), src)
	}
}
