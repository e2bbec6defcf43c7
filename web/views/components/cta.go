package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func CTASection() g.Node {
	return h.Section(
		h.Class("bg-teal-600 py-16 md:py-20"),
		g.Attr("data-section", "cta"),
		h.Div(
			h.Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			h.H2(
				h.Class("text-3xl md:text-4xl font-bold text-white mb-4"),
				g.Text("Ready to Find Your Nearest Pharmacy?"),
			),
			h.P(
				h.Class("text-lg text-teal-50 mb-8"),
				g.Text("Join thousands of Rwandans using Blessed Irembo to access healthcare services"),
			),
			h.A(
				h.Href(RoutePharmacies),
				h.Class("inline-flex items-center bg-white text-teal-600 px-8 py-3 rounded-md font-medium hover:bg-gray-50 transition-colors shadow-lg"),
				searchIcon("w-5 h-5 mr-2"),
				g.Text("Search Pharmacies Now"),
			),
		),
	)
}
