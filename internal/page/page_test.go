package page

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"rallypointwellness.com/site/internal/audit"
	"rallypointwellness.com/site/internal/content"
	"rallypointwellness.com/site/internal/nav"
)

func defaultSite(t *testing.T) *content.Site {
	t.Helper()

	s, err := content.Default()
	require.NoError(t, err)
	return s
}

func renderPage(t *testing.T, site *content.Site, opts Options) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Build(site, opts).Render(&buf))
	return buf.Bytes()
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestEveryInPageLinkHasExactlyOneTarget(t *testing.T) {
	t.Parallel()

	body := renderPage(t, defaultSite(t), Options{Year: 2026})

	rep, err := audit.Anchors(bytes.NewReader(body))
	require.NoError(t, err)
	require.NoError(t, rep.Err())
	require.NotEmpty(t, rep.Links)

	doc := parseHTML(t, body)
	doc.Find(`nav a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		require.Equal(t, 1, doc.Find(href).Length(), "target for %s", href)
	})
}

func TestSectionsRenderInFixedOrder(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{}))

	var ids []string
	doc.Find("body > section").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	require.Equal(t, nav.IDs(), ids)
	require.Equal(t, 1, doc.Find("body > header").Length())
	require.Equal(t, 1, doc.Find("body > footer").Length())
}

func TestEmptyTeamRendersNoCards(t *testing.T) {
	t.Parallel()

	site := defaultSite(t)
	require.Equal(t, 3, parseHTML(t, renderPage(t, site, Options{})).Find("section#team h3").Length())

	site.Team.Members = nil
	doc := parseHTML(t, renderPage(t, site, Options{}))
	require.Equal(t, 1, doc.Find("section#team").Length())
	require.Equal(t, 0, doc.Find("section#team h3").Length())
	require.Equal(t, 0, doc.Find("section#team img").Length())
}

func TestEmptyListsDoNotFail(t *testing.T) {
	t.Parallel()

	site := defaultSite(t)
	site.Nav = nil
	site.Responders.Concerns = nil
	site.Responders.Points = nil
	site.Resources.FAQs = nil
	site.Insurance.Cards = nil
	site.Hero.Stats = nil

	doc := parseHTML(t, renderPage(t, site, Options{}))
	require.Equal(t, 0, doc.Find("nav a").Length())
	require.Equal(t, 0, doc.Find("section#insurance h3").Length())
	require.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length(), "only the business schema remains")
}

func TestAcknowledgeVariantForm(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{Variant: VariantAcknowledge}))
	form := doc.Find("section#contact form")
	require.Equal(t, 1, form.Length())

	_, hasAction := form.Attr("action")
	require.False(t, hasAction, "form must not target any endpoint")
	require.Equal(t, 0, form.Find("[name]").Length(), "fields carry no submittable names")

	handler := form.AttrOr("onsubmit", "")
	require.True(t, strings.HasPrefix(handler, "event.preventDefault();"))
	require.Equal(t, 1, strings.Count(handler, "alert("))
	require.Contains(t, handler, `"Thanks! We will contact you shortly."`)
	require.NotContains(t, handler, "fetch(")
	require.NotContains(t, handler, "XMLHttpRequest")

	require.Equal(t, 1, form.Find(`button[type="submit"]`).Length())
	require.Equal(t, 3, form.Find("input[required]").Length())
}

func TestStaticVariantHasNoHandler(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{Variant: VariantStatic}))
	form := doc.Find("section#contact form")
	require.Equal(t, 1, form.Length())
	_, hasHandler := form.Attr("onsubmit")
	require.False(t, hasHandler)
	require.Equal(t, "static", form.AttrOr("data-contact-form", ""))
}

func TestAcknowledgeScriptQuotes(t *testing.T) {
	t.Parallel()

	require.Equal(t, `event.preventDefault(); alert("It's \"done\"");`, AcknowledgeScript(`It's "done"`))
}

func TestPaletteRoutedThroughConstant(t *testing.T) {
	t.Parallel()

	site := defaultSite(t)
	site.Brand.Palette.Primary = "#112233"
	body := string(renderPage(t, site, Options{}))

	require.Contains(t, body, "--brand-primary:#112233;")
	require.Contains(t, body, "rgba(17,34,51,0.03)")
	require.NotContains(t, body, "#164C3A")
	require.NotContains(t, body, "rgba(22,76,58")
}

func TestContactChannels(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{}))
	require.Equal(t, 2, doc.Find(`a[href="tel:+15555555555"]`).Length())
	require.Equal(t, 1, doc.Find(`a[href="mailto:hello@rallypointwellness.com"]`).Length())
	require.Contains(t, doc.Find("section#contact").Text(), "Ventura, California (Telehealth statewide)")
}

func TestHeadMetadata(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{BaseURL: "https://rallypoint.example", Lang: "en-US", AssetsPrefix: "assets/"}))
	require.Equal(t, "en-US", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "https://rallypoint.example/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "assets/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Contains(t, doc.Find("title").Text(), "Rally Point Family & Wellness")
	require.Equal(t, "summary_large_image", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	require.Equal(t, doc.Find(`meta[property="og:image"]`).AttrOr("content", "og"),
		doc.Find(`meta[name="twitter:image"]`).AttrOr("content", "twitter"))
}

func TestFAQStructuredDataIsPlainText(t *testing.T) {
	t.Parallel()

	site := defaultSite(t)
	site.Resources.FAQs = []content.FAQ{{Question: "Evenings?", Answer: "Yes, **limited** availability."}}
	doc := parseHTML(t, renderPage(t, site, Options{}))

	var faq struct {
		MainEntity []struct {
			AcceptedAnswer struct {
				Text string `json:"text"`
			} `json:"acceptedAnswer"`
		} `json:"mainEntity"`
	}
	raw := doc.Find(`script[type="application/ld+json"]`).Last().Text()
	require.NoError(t, json.Unmarshal([]byte(raw), &faq))
	require.Len(t, faq.MainEntity, 1)
	require.Equal(t, "Yes, limited availability.", faq.MainEntity[0].AcceptedAnswer.Text)
}

func TestUnknownVariantRendersAcknowledge(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderPage(t, defaultSite(t), Options{Variant: "bogus"}))
	form := doc.Find("section#contact form")
	require.Equal(t, "acknowledge", form.AttrOr("data-contact-form", ""))
	require.Contains(t, form.AttrOr("onsubmit", ""), "event.preventDefault();")
}

func TestFooterCopyrightAndFAQMarkdown(t *testing.T) {
	t.Parallel()

	site := defaultSite(t)
	site.Resources.FAQs = []content.FAQ{{Question: "Evenings?", Answer: "Yes, **limited** availability."}}
	doc := parseHTML(t, renderPage(t, site, Options{Year: 2031}))

	require.Equal(t, "© 2031 Rally Point Family & Wellness. All rights reserved.", strings.TrimSpace(doc.Find("footer > div").Last().Text()))
	li := doc.Find("section#forms li").Last()
	require.Equal(t, "limited", li.Find("strong").Last().Text())
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	v, err := ParseVariant("")
	require.NoError(t, err)
	require.Equal(t, VariantAcknowledge, v)

	v, err = ParseVariant(" STATIC ")
	require.NoError(t, err)
	require.Equal(t, VariantStatic, v)

	_, err = ParseVariant("submit")
	require.Error(t, err)
}
