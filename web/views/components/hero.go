package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HeroSection introduces the platform: headline and copy on the left, a
// photo on the right.
func HeroSection() g.Node {
	return h.Section(
		h.Class("bg-gray-50 py-12 md:py-20"),
		g.Attr("data-section", "hero"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-12 items-center"),

				h.Div(
					h.Class("space-y-6"),
					h.H1(
						h.Class("text-4xl md:text-5xl font-bold text-gray-900 leading-tight"),
						g.Text("Find Trusted Pharmacies Anywhere in Rwanda"),
					),
					h.P(
						h.Class("text-lg text-gray-600 leading-relaxed"),
						g.Text("Blessed Irembo connects you with verified pharmacies nationwide. Search by location, check availability, and get the medication you need, when you need it."),
					),
					h.Div(
						h.Class("flex flex-col sm:flex-row gap-4"),
						h.A(
							h.Href(RoutePharmacies),
							h.Class("inline-flex items-center justify-center bg-teal-600 text-white px-6 py-3 rounded-md font-medium hover:bg-teal-700 transition-colors"),
							searchIcon("w-5 h-5 mr-2"),
							g.Text("Find Pharmacies"),
						),
						h.A(
							h.Href(RouteRegisterPharmacy),
							h.Class("inline-flex items-center justify-center bg-white text-teal-600 px-6 py-3 rounded-md font-medium border-2 border-teal-600 hover:bg-teal-50 transition-colors"),
							g.Text("Register Pharmacy"),
							chevronIcon("w-5 h-5 ml-2"),
						),
					),
				),

				h.Div(
					h.Class("relative h-96 md:h-[500px]"),
					h.Img(
						h.Src(HeroImagePath),
						h.Alt("Pharmacist at work"),
						h.Class("absolute inset-0 w-full h-full object-cover rounded-lg shadow-lg"),
						g.Attr("fetchpriority", "high"),
					),
				),
			),
		),
	)
}
