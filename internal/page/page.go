// Package page composes the single brochure page from content and the ui
// building blocks. Sections render in a fixed order; each one is a pure
// function of the content document.
package page

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"rallypointwellness.com/site/internal/brand"
	"rallypointwellness.com/site/internal/content"
	"rallypointwellness.com/site/internal/format"
	"rallypointwellness.com/site/internal/nav"
	"rallypointwellness.com/site/internal/seo"
	"rallypointwellness.com/site/internal/ui"
)

const container = "max-w-6xl mx-auto px-4"

// Build renders the full HTML document for site.
func Build(site *content.Site, opts Options) g.Node {
	opts = opts.withDefaults()
	p := site.Brand.Palette

	return h.Doctype(
		h.HTML(h.Lang(opts.Lang),
			head(site, opts),
			h.Body(h.Class("min-h-screen bg-white text-slate-900"),
				topBar(site),
				hero(site),
				services(site),
				responders(site, p),
				telehealth(site),
				insurance(site, p),
				team(site),
				resources(site),
				contactSection(site, p, opts.Variant),
				footer(site, opts.Year),
			),
		),
	)
}

func head(site *content.Site, opts Options) g.Node {
	canonical := seo.CanonicalURL(opts.BaseURL)
	meta := seo.Build(site.SEO.Title, site.SEO.Description, site.SEO.Image, site.Brand.Name, canonical)

	ld := []map[string]any{seo.MedicalBusiness(seo.Practice{
		Name:        site.Brand.Name,
		URL:         canonical,
		Description: site.SEO.Description,
		Telephone:   site.Contact.Phone,
		Email:       site.Contact.Email,
		AreaServed:  site.Contact.Region,
		Image:       site.SEO.Image,
	})}
	faqs := make([]seo.FAQEntry, 0, len(site.Resources.FAQs))
	for _, f := range site.Resources.FAQs {
		faqs = append(faqs, seo.FAQEntry{Question: f.Question, Answer: format.PlainText(f.Answer)})
	}
	if faq := seo.FAQPage(faqs); faq != nil {
		ld = append(ld, faq)
	}

	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		g.El("title", g.Text(meta.Title)),
		h.Meta(h.Name("description"), h.Content(meta.Description)),
		h.Meta(h.Name("robots"), h.Content(meta.Robots)),
		g.If(meta.Canonical != "", h.Link(h.Rel("canonical"), h.Href(meta.Canonical))),
		ogMeta("og:title", meta.OG.Title),
		ogMeta("og:description", meta.OG.Description),
		ogMeta("og:type", meta.OG.Type),
		ogMeta("og:site_name", meta.OG.SiteName),
		ogMeta("og:url", meta.OG.URL),
		ogMeta("og:image", meta.OG.Image),
		h.Meta(h.Name("twitter:card"), h.Content(meta.Twitter.Card)),
		g.If(meta.Twitter.Image != "", h.Meta(h.Name("twitter:image"), h.Content(meta.Twitter.Image))),
		h.Meta(h.Name("theme-color"), h.Content(site.Brand.Palette.Primary)),
		h.Script(h.Src("https://cdn.tailwindcss.com")),
		h.Link(h.Rel("stylesheet"), h.Href(opts.AssetsPrefix+"/site.css")),
		g.El("style", g.Raw(site.Brand.Palette.CSSVars())),
		ui.Repeat(ld, func(m map[string]any) g.Node {
			return g.El("script", h.Type("application/ld+json"), g.Raw(seo.JSON(m)))
		}),
	)
}

func ogMeta(property, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", property), h.Content(value))
}

func monogram(site *content.Site, size string) g.Node {
	return h.Div(h.Class(ui.Classes(size, "rounded-full flex items-center justify-center border")),
		g.Attr("style", "border-color:var(--brand-primary)"),
		h.Span(h.Class("font-semibold"), g.Attr("style", "color:var(--brand-primary)"), g.Text(site.Brand.Monogram)),
	)
}

func topBar(site *content.Site) g.Node {
	return h.Div(h.Class("w-full border-b bg-white/80 backdrop-blur supports-[backdrop-filter]:bg-white/50 sticky top-0 z-40"),
		h.Div(h.Class(container+" py-3 flex items-center justify-between"),
			h.Div(h.Class("flex items-center gap-3"),
				monogram(site, "h-10 w-10"),
				h.Div(h.Class("leading-tight"),
					h.Div(h.Class("font-semibold"), g.Text(site.Brand.Name)),
					h.Div(h.Class("text-xs text-slate-500"), g.Text(site.Brand.Tagline)),
				),
			),
			h.Nav(h.Class("hidden md:flex items-center gap-6"), g.Attr("aria-label", "Primary"),
				ui.Repeat(nav.Build(site.NavItems()), func(it nav.RenderedItem) g.Node {
					return ui.NavLink(it.Href, it.Label)
				}),
			),
			h.Div(h.Class("hidden md:flex items-center gap-3"),
				h.A(h.Href(format.PhoneHref(site.Contact.Phone)), h.Class("flex items-center gap-2 text-sm font-medium"),
					g.Attr("style", "color:var(--brand-primary)"),
					ui.Icon(ui.IconPhone, "h-4 w-4"), g.Text(site.Contact.Phone),
				),
				h.A(h.Href(site.BookCTA.Href),
					ui.Button(ui.ButtonProps{Class: "rounded-2xl"}, h.Type("button"), g.Text(site.BookCTA.Label)),
				),
			),
		),
	)
}

func hero(site *content.Site) g.Node {
	p := site.Brand.Palette
	hr := site.Hero
	return h.Header(
		g.Attr("style", "background-image:linear-gradient(to bottom,"+p.Background+","+p.Tint(brand.RolePrimary, 0.05)+")"),
		h.Div(h.Class(container+" py-16 md:py-24 grid md:grid-cols-2 gap-10 items-center"),
			h.Div(
				h.H1(h.Class("text-3xl md:text-5xl font-semibold leading-tight"),
					g.Text(hr.Title),
					g.If(hr.Highlight != "",
						h.Span(h.Class("block"), g.Attr("style", "color:var(--brand-primary)"), g.Text(hr.Highlight)),
					),
				),
				h.P(h.Class("mt-4 text-slate-600 max-w-xl"), g.Text(hr.Lede)),
				h.Div(h.Class("mt-6 flex flex-wrap gap-3"),
					h.A(h.Href(hr.PrimaryCTA.Href),
						ui.Button(ui.ButtonProps{Class: "rounded-2xl px-6"}, h.Type("button"), g.Text(hr.PrimaryCTA.Label)),
					),
					h.A(h.Href(hr.SecondaryCTA.Href),
						ui.Button(ui.ButtonProps{Variant: ui.VariantOutline, Class: "rounded-2xl px-6"}, h.Type("button"),
							g.Text(hr.SecondaryCTA.Label+" "),
							ui.Icon(ui.IconArrowRight, "ml-2 h-4 w-4 inline"),
						),
					),
				),
				h.Div(h.Class("mt-6 grid grid-cols-3 gap-6"),
					ui.Repeat(hr.Stats, func(s content.Stat) g.Node { return ui.Stat(s.Value, s.Label) }),
				),
			),
			g.If(hr.Image.Src != "",
				h.Div(h.Class("relative aspect-[4/3] rounded-3xl overflow-hidden shadow-sm border"),
					g.Attr("style", "border-color:var(--brand-accent)"),
					h.Img(h.Src(hr.Image.Src), h.Alt(hr.Image.Alt), h.Class("h-full w-full object-cover")),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-black/30 to-transparent")),
					g.If(hr.Caption != "",
						h.Div(h.Class("absolute bottom-4 left-4 text-white"),
							h.Div(h.Class("text-sm font-medium"), g.Text(hr.Caption)),
						),
					),
				),
			),
		),
	)
}

func sectionHeading(title, lede, ledeClass string) g.Node {
	return g.Group([]g.Node{
		h.H2(h.Class("text-2xl md:text-3xl font-semibold"), g.Text(title)),
		g.If(lede != "", h.P(h.Class(ui.Classes("text-slate-600", ledeClass)), g.Text(lede))),
	})
}

func services(site *content.Site) g.Node {
	s := site.Services
	return ui.Section("services", "",
		h.Div(h.Class(container),
			h.Div(h.Class("max-w-2xl"), sectionHeading(s.Title, s.Lede, "mt-2")),
			ui.Repeat(indexed(s.Rows), func(row indexedRow) g.Node {
				gap := "mt-6"
				if row.index == 0 {
					gap = "mt-8"
				}
				return h.Div(h.Class("grid md:grid-cols-3 gap-6 "+gap),
					ui.Repeat(row.features, func(f content.Feature) g.Node { return ui.Feature(f.Icon, f.Title, f.Desc) }),
				)
			}),
		),
	)
}

type indexedRow struct {
	index    int
	features []content.Feature
}

func indexed(rows [][]content.Feature) []indexedRow {
	out := make([]indexedRow, 0, len(rows))
	for i, r := range rows {
		out = append(out, indexedRow{index: i, features: r})
	}
	return out
}

func bulletList(points []string) g.Node {
	if len(points) == 0 {
		return nil
	}
	return h.Ul(h.Class("mt-5 space-y-2"),
		ui.Repeat(points, func(p string) g.Node { return ui.ListItem(g.Text(p)) }),
	)
}

func tinted(p brand.Palette) g.Node {
	return g.Attr("style", "background-color:"+p.Tint(brand.RolePrimary, 0.03))
}

func responders(site *content.Site, p brand.Palette) g.Node {
	r := site.Responders
	return ui.Section("first-responders", "", tinted(p),
		h.Div(h.Class(container+" grid md:grid-cols-2 gap-10 items-center"),
			h.Div(
				sectionHeading(r.Title, r.Lede, "mt-3"),
				bulletList(r.Points),
				h.Div(h.Class("mt-6"),
					h.A(h.Href(r.CTA.Href),
						ui.Button(ui.ButtonProps{Class: "rounded-2xl"}, h.Type("button"), g.Text(r.CTA.Label)),
					),
				),
			),
			h.Div(
				ui.Card("rounded-3xl border shadow-sm",
					ui.CardHeader(ui.CardTitle("text-lg", g.Text(r.ConcernsTitle))),
					ui.CardContent("",
						h.Div(h.Class("grid grid-cols-2 gap-3 text-sm"), ui.Repeat(r.Concerns, ui.Pill)),
					),
				),
			),
		),
	)
}

func telehealth(site *content.Site) g.Node {
	t := site.Telehealth
	return ui.Section("telehealth", "",
		h.Div(h.Class(container+" grid md:grid-cols-2 gap-10 items-center"),
			h.Div(h.Class("order-2 md:order-1"),
				g.If(t.Image.Src != "",
					h.Div(h.Class("aspect-video rounded-3xl overflow-hidden border shadow-sm"),
						h.Img(h.Src(t.Image.Src), h.Alt(t.Image.Alt), h.Class("h-full w-full object-cover")),
					),
				),
			),
			h.Div(h.Class("order-1 md:order-2"),
				sectionHeading(t.Title, t.Lede, "mt-3"),
				bulletList(t.Points),
				g.If(t.Note != "",
					h.Div(h.Class("mt-6 flex items-center gap-3 text-sm text-slate-600"),
						ui.Icon(ui.IconVideo, "h-4 w-4"), g.Text(t.Note),
					),
				),
			),
		),
	)
}

func insurance(site *content.Site, p brand.Palette) g.Node {
	in := site.Insurance
	return ui.Section("insurance", "", tinted(p),
		h.Div(h.Class(container),
			sectionHeading(in.Title, in.Lede, "mt-2 max-w-3xl"),
			h.Div(h.Class("grid md:grid-cols-3 gap-6 mt-8"),
				ui.Repeat(in.Cards, func(c content.InfoCard) g.Node {
					return ui.Card("rounded-2xl border",
						ui.CardHeader(ui.CardTitle("text-lg", g.Text(c.Title))),
						ui.CardContent("text-sm text-slate-600 space-y-2",
							ui.Repeat(c.Lines, func(l string) g.Node { return h.P(g.Text(l)) }),
						),
					)
				}),
			),
		),
	)
}

func team(site *content.Site) g.Node {
	tm := site.Team
	return ui.Section("team", "",
		h.Div(h.Class(container),
			sectionHeading(tm.Title, tm.Lede, "mt-2 max-w-3xl"),
			h.Div(h.Class("grid sm:grid-cols-2 md:grid-cols-3 gap-6 mt-8"),
				ui.Repeat(tm.Members, func(m content.Member) g.Node {
					return ui.Card("rounded-2xl overflow-hidden border",
						g.If(m.Image != "", h.Img(h.Src(m.Image), h.Alt(m.Name), h.Class("h-56 w-full object-cover"))),
						ui.CardHeader(
							ui.CardTitle("text-lg", g.Text(m.Name)),
							h.Div(h.Class("text-slate-600 text-sm"), g.Text(m.Role)),
						),
					)
				}),
			),
		),
	)
}

func resources(site *content.Site) g.Node {
	r := site.Resources
	return ui.Section("forms", "",
		h.Div(h.Class(container+" grid md:grid-cols-2 gap-8"),
			h.Div(
				h.H3(h.Class("text-xl font-semibold"), g.Text(r.FormsTitle)),
				g.If(r.FormsLede != "", h.P(h.Class("text-slate-600 mt-2 text-sm"), g.Text(r.FormsLede))),
				h.Ul(h.Class("mt-4 space-y-2 text-sm"),
					ui.Repeat(r.Forms, func(l content.Link) g.Node {
						return h.Li(h.A(h.Class("underline"), h.Href(l.Href), g.Text(l.Label)))
					}),
				),
			),
			h.Div(
				h.H3(h.Class("text-xl font-semibold"), g.Text(r.FAQTitle)),
				h.Ul(h.Class("mt-4 space-y-3 text-sm text-slate-700"),
					ui.Repeat(r.FAQs, faq),
				),
			),
		),
	)
}

func faq(f content.FAQ) g.Node {
	answer := g.Text(f.Answer)
	if html, err := format.InlineMarkdown(f.Answer); err == nil {
		answer = g.Raw(html)
	}
	return h.Li(h.Strong(g.Text(f.Question)), g.Text(" "), answer)
}

func contactSection(site *content.Site, p brand.Palette, variant Variant) g.Node {
	c := site.ContactSection
	return ui.Section("contact", "", tinted(p),
		h.Div(h.Class(container+" grid md:grid-cols-2 gap-10 items-start"),
			h.Div(
				sectionHeading(c.Title, c.Lede, "mt-2"),
				h.Div(h.Class("mt-6 space-y-3 text-sm text-slate-700"),
					contactLine(ui.IconPhone, h.A(h.Href(format.PhoneHref(site.Contact.Phone)), g.Text(site.Contact.Phone))),
					contactLine(ui.IconMail, h.A(h.Href(format.MailtoHref(site.Contact.Email)), g.Text(site.Contact.Email))),
					g.If(site.Contact.Region != "", contactLine(ui.IconMapPin, g.Text(site.Contact.Region))),
				),
			),
			contactForm(c, variant),
		),
	)
}

func contactLine(icon string, body g.Node) g.Node {
	return h.Div(h.Class("flex items-center gap-2"),
		ui.Icon(icon, "h-4 w-4", g.Attr("style", "color:var(--brand-primary)")),
		body,
	)
}

// contactForm renders the mock contact form. Fields carry no name attribute, so
// nothing would be submitted even if the browser navigated.
func contactForm(c content.ContactSection, variant Variant) g.Node {
	attrs := []g.Node{h.Class("space-y-4"), g.Attr("data-contact-form", string(variant))}
	if variant == VariantAcknowledge {
		attrs = append(attrs, g.Attr("onsubmit", AcknowledgeScript(c.Acknowledgment)))
	}
	return g.El("form", append(attrs,
		h.Div(h.Class("grid grid-cols-2 gap-3"),
			ui.Input("", h.Placeholder("First name"), h.Required()),
			ui.Input("", h.Placeholder("Last name"), h.Required()),
		),
		ui.Input("", h.Type("email"), h.Placeholder("Email"), h.Required()),
		ui.Input("", h.Type("tel"), h.Placeholder("Phone")),
		ui.Textarea("min-h-[120px]", h.Placeholder("How can we help?")),
		g.If(c.Disclaimer != "", h.Div(h.Class("text-xs text-slate-500"), g.Text(c.Disclaimer))),
		ui.Button(ui.ButtonProps{Class: "w-full rounded-2xl"}, h.Type("submit"), g.Text(c.Submit)),
	)...)
}

// AcknowledgeScript is the inline submit handler: cancel navigation, then show
// message once.
func AcknowledgeScript(message string) string {
	quoted, err := json.Marshal(message)
	if err != nil {
		quoted = []byte(`""`)
	}
	return "event.preventDefault(); alert(" + string(quoted) + ");"
}

func footer(site *content.Site, year int) g.Node {
	f := site.Footer
	linkList := func(items []nav.Item) g.Node {
		return h.Ul(h.Class("space-y-2"),
			ui.Repeat(nav.Build(items), func(it nav.RenderedItem) g.Node {
				a := []g.Node{h.Class("hover:underline"), h.Href(it.Href)}
				if it.External {
					a = append(a, h.Target("_blank"), h.Rel("noopener noreferrer"))
				}
				return h.Li(h.A(append(a, g.Text(it.Label))...))
			}),
		)
	}
	return h.Footer(h.Class("border-t"),
		h.Div(h.Class(container+" py-10 grid md:grid-cols-4 gap-6 text-sm"),
			h.Div(h.Class("col-span-2"),
				h.Div(h.Class("flex items-center gap-3"),
					monogram(site, "h-9 w-9"),
					h.Div(h.Class("font-semibold"), g.Text(site.Brand.Name)),
				),
				g.If(f.Blurb != "", h.P(h.Class("text-slate-600 mt-3"), g.Text(f.Blurb))),
			),
			h.Div(
				h.Div(h.Class("font-semibold mb-2"), g.Text(f.ExploreTitle)),
				linkList(site.ExploreItems()),
			),
			h.Div(
				h.Div(h.Class("font-semibold mb-2"), g.Text(f.PoliciesTitle)),
				linkList(site.PolicyItems()),
			),
		),
		h.Div(h.Class("text-center text-xs text-slate-500 pb-8"), g.Text(format.Copyright(year, site.Brand.Name))),
	)
}
