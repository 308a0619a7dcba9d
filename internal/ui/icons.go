package ui

import (
	g "maragu.dev/gomponents"
)

const (
	IconPhone         = "phone"
	IconMail          = "mail"
	IconMapPin        = "map-pin"
	IconShield        = "shield"
	IconUsers         = "users"
	IconHeart         = "heart"
	IconStethoscope   = "stethoscope"
	IconMessageSquare = "message-square"
	IconClock         = "clock"
	IconArrowRight    = "arrow-right"
	IconCheckCircle   = "check-circle"
	IconVideo         = "video"
)

// 24x24 stroke icons.
var iconPaths = map[string]string{
	IconPhone:         `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	IconMail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	IconMapPin:        `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	IconShield:        `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/>`,
	IconUsers:         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	IconHeart:         `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	IconStethoscope:   `<path d="M4.8 2.3A.3.3 0 1 0 5 2H4a2 2 0 0 0-2 2v5a6 6 0 0 0 6 6a6 6 0 0 0 6-6V4a2 2 0 0 0-2-2h-1a.2.2 0 1 0 .3.3"/><path d="M8 15v1a6 6 0 0 0 6 6a6 6 0 0 0 6-6v-4"/><circle cx="20" cy="10" r="2"/>`,
	IconMessageSquare: `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
	IconClock:         `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	IconArrowRight:    `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	IconCheckCircle:   `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
	IconVideo:         `<path d="m22 8-6 4 6 4V8Z"/><rect width="14" height="12" x="2" y="6" rx="2" ry="2"/>`,
}

// HasIcon reports whether name is part of the icon set.
func HasIcon(name string) bool {
	_, ok := iconPaths[name]
	return ok
}

// Icon renders an inline SVG icon. Unknown names render nothing.
func Icon(name, class string, attrs ...g.Node) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return g.Group(nil)
	}
	nodes := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
	}
	if class != "" {
		nodes = append(nodes, g.Attr("class", class))
	}
	nodes = append(nodes, attrs...)
	nodes = append(nodes, g.Raw(paths))
	return g.El("svg", nodes...)
}
