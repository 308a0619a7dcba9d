// Package ui holds the stateless building blocks of the site: primitive controls,
// the card family and small layout helpers. Every function maps its inputs to a
// fixed markup fragment; colors come from the brand CSS custom properties.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant selects one of the two fixed button styles.
type Variant string

const (
	VariantSolid   Variant = "solid"
	VariantOutline Variant = "outline"
)

const (
	buttonBase    = "px-4 py-2 font-medium rounded-2xl transition-colors"
	buttonSolid   = "bg-[var(--brand-primary)] text-white hover:opacity-95"
	buttonOutline = "border border-[var(--brand-primary)] text-[var(--brand-primary)] bg-white hover:bg-gray-50"
	fieldBase     = "w-full rounded-xl border px-3 py-2 text-sm outline-none focus:ring-2 focus:ring-[var(--brand-primary)]"
)

// ButtonProps configures Button. The zero value is a solid button.
type ButtonProps struct {
	Variant Variant
	Class   string
}

// Button renders a <button>. Caller classes are appended after the base and
// variant classes; every child node is forwarded as given.
func Button(p ButtonProps, children ...g.Node) g.Node {
	return h.Button(prepend(h.Class(Classes(buttonBase, buttonStyle(p.Variant), p.Class)), children)...)
}

func buttonStyle(v Variant) string {
	if v == VariantOutline {
		return buttonOutline
	}
	return buttonSolid
}

// Input renders an <input> with the field style and forwards attrs unchanged.
func Input(class string, attrs ...g.Node) g.Node {
	return h.Input(prepend(h.Class(Classes(fieldBase, class)), attrs)...)
}

// Textarea renders a <textarea> with the field style and forwards attrs unchanged.
func Textarea(class string, attrs ...g.Node) g.Node {
	return h.Textarea(prepend(h.Class(Classes(fieldBase, class)), attrs)...)
}

// Classes joins non-empty class strings with single spaces, preserving order.
func Classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func prepend(first g.Node, rest []g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(rest)+1)
	nodes = append(nodes, first)
	return append(nodes, rest...)
}
