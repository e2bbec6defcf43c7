package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Header is the top navigation bar. The mobile menu button is rendered
// without any handler attached.
func Header() g.Node {
	return h.Header(
		h.Class("bg-white border-b border-gray-100"),
		g.Attr("data-section", "header"),
		h.Nav(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("flex justify-between items-center h-16"),

				h.Div(
					h.Class("shrink-0"),
					h.A(
						h.Href(RouteHome),
						h.Class("flex items-center gap-3"),
						g.Attr("data-nav", "brand"),
						logo(true),
						brandName(),
					),
				),

				h.Div(
					h.Class("hidden md:flex items-center space-x-8"),
					g.Attr("data-nav", "primary"),
					g.Group(g.Map(navigationLinks, navLink)),
				),

				h.Div(
					h.Class("hidden md:flex items-center space-x-4"),
					g.Attr("data-nav", "actions"),
					g.Group(g.Map(actionLinks, navLink)),
				),

				h.Div(
					h.Class("md:hidden"),
					h.Button(
						h.Type("button"),
						h.Class("text-gray-700 hover:text-teal-600 focus:outline-none focus:ring-2 focus:ring-teal-500"),
						h.Aria("label", "Open menu"),
						menuIcon("h-6 w-6"),
					),
				),
			),
		),
	)
}

func navLink(link navigationLink) g.Node {
	return h.A(h.Href(link.Href), h.Class(link.Class), g.Text(link.Text))
}
