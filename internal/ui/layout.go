package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavLink renders a top-bar navigation anchor.
func NavLink(href, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Class("text-sm font-medium text-slate-800 hover:text-slate-950 transition-colors"),
		g.Text(label),
	)
}

// Section renders an anchor-addressable page section.
func Section(id, class string, children ...g.Node) g.Node {
	return h.Section(append([]g.Node{h.ID(id), h.Class(Classes("py-16 md:py-24", class))}, children...)...)
}

// Feature renders a service card with an accent icon tile.
func Feature(icon, title, desc string) g.Node {
	return Card("rounded-2xl shadow-sm",
		CardHeader(
			h.Div(h.Class("flex items-center gap-3"),
				h.Div(h.Class("p-2 rounded-xl"), g.Attr("style", "background-color:var(--brand-accent)"),
					Icon(icon, "h-5 w-5"),
				),
				CardTitle("text-lg", g.Text(title)),
			),
		),
		CardContent("",
			h.P(h.Class("text-slate-600 text-sm leading-relaxed"), g.Text(desc)),
		),
	)
}

// Stat renders a headline value with a caption.
func Stat(value, label string) g.Node {
	return h.Div(h.Class("text-center"),
		h.Div(h.Class("text-3xl md:text-4xl font-semibold"), g.Attr("style", "color:var(--brand-primary)"), g.Text(value)),
		h.Div(h.Class("text-slate-600 text-sm mt-1"), g.Text(label)),
	)
}

// Pill renders a bordered chip with a brand dot.
func Pill(label string) g.Node {
	return h.Div(h.Class("px-3 py-2 rounded-xl bg-white border flex items-center gap-2"),
		h.Span(h.Class("h-1.5 w-1.5 rounded-full"), g.Attr("style", "background-color:var(--brand-primary)")),
		g.Text(label),
	)
}

// ListItem renders a check-marked bullet.
func ListItem(children ...g.Node) g.Node {
	return h.Li(h.Class("flex items-start gap-2"),
		Icon(IconCheckCircle, "h-5 w-5 mt-0.5", g.Attr("style", "color:var(--brand-primary)")),
		h.Span(append([]g.Node{h.Class("text-slate-700")}, children...)...),
	)
}

// Repeat renders fn for every item in order. An empty slice renders nothing.
func Repeat[T any](items []T, fn func(T) g.Node) g.Node {
	return g.Group(g.Map(items, fn))
}
