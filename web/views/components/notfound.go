package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is shown for every route the site links to but does not serve.
func NotFound() g.Node {
	return h.Section(
		h.Class("bg-gray-50 py-24"),
		g.Attr("data-section", "not-found"),
		h.Div(
			h.Class("max-w-2xl mx-auto px-4 text-center space-y-6"),
			h.H1(h.Class("text-4xl font-bold text-gray-900"), g.Text("Page not found")),
			h.P(h.Class("text-lg text-gray-600"), g.Text("This page is not available yet.")),
			h.A(
				h.Href(RouteHome),
				h.Class("inline-flex items-center bg-teal-600 text-white px-6 py-3 rounded-md font-medium hover:bg-teal-700 transition-colors"),
				g.Text("Back to Home"),
			),
		),
	)
}
