package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card is a bordered container.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(prepend(h.Class(Classes("bg-white border rounded-2xl", class)), children)...)
}

// CardHeader is the optional header region of a Card.
func CardHeader(children ...g.Node) g.Node {
	return h.Div(prepend(h.Class("p-4 border-b last:border-b-0"), children)...)
}

func CardTitle(class string, children ...g.Node) g.Node {
	return h.H3(prepend(h.Class(Classes("font-semibold", class)), children)...)
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(prepend(h.Class(Classes("p-4", class)), children)...)
}
