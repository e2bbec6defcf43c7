package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	pathSearch    = "M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z"
	pathChevron   = "M9 5l7 7-7 7"
	pathMenu      = "M4 6h16M4 12h16M4 18h16"
	pathMail      = "M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"
	pathPhone     = "M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"
	pathPin       = "M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z"
	pathPinDot    = "M15 11a3 3 0 11-6 0 3 3 0 016 0z"
	pathShield    = "M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"
	pathCheckmark = "M10 18a8 8 0 100-16 8 8 0 000 16zm3.707-9.293a1 1 0 00-1.414-1.414L9 10.586 7.707 9.293a1 1 0 00-1.414 1.414l2 2a1 1 0 001.414 0l4-4z"
)

// strokeIcon renders a 24x24 outline glyph. name ends up in data-icon so the
// glyph can be identified in the markup.
func strokeIcon(name, class string, paths ...string) g.Node {
	return g.El("svg",
		h.Class(class),
		g.Attr("data-icon", name),
		g.Attr("fill", "none"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("stroke-width", "2"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.Group(g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		})),
	)
}

func searchIcon(class string) g.Node  { return strokeIcon("search", class, pathSearch) }
func chevronIcon(class string) g.Node { return strokeIcon("chevron-right", class, pathChevron) }
func menuIcon(class string) g.Node    { return strokeIcon("menu", class, pathMenu) }
func mailIcon(class string) g.Node    { return strokeIcon("mail", class, pathMail) }
func phoneIcon(class string) g.Node   { return strokeIcon("phone", class, pathPhone) }
func pinIcon(class string) g.Node     { return strokeIcon("location", class, pathPin, pathPinDot) }
func shieldIcon(class string) g.Node  { return strokeIcon("shield-check", class, pathShield) }

func checkmarkIcon(class string) g.Node {
	return g.El("svg",
		h.Class(class),
		g.Attr("data-icon", "check"),
		g.Attr("fill", "currentColor"),
		g.Attr("viewBox", "0 0 20 20"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("fill-rule", "evenodd"),
			g.Attr("d", pathCheckmark),
			g.Attr("clip-rule", "evenodd"),
		),
	)
}

func logo(eager bool) g.Node {
	loading := "lazy"
	if eager {
		loading = "eager"
	}
	return h.Img(
		h.Src(LogoPath),
		h.Alt(BrandName),
		h.Width("80"),
		h.Height("80"),
		h.Class("object-contain"),
		g.Attr("loading", loading),
	)
}

func brandName() g.Node {
	return h.Span(h.Class("text-xl font-bold text-gray-900"), g.Text(BrandName))
}
