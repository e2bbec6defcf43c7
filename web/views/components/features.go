package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	Title       string
	Description string
	Icon        func(class string) g.Node
}

var features = []feature{
	{
		Title:       "Search by Location",
		Description: "Find pharmacies near you in any district across Rwanda",
		Icon:        pinIcon,
	},
	{
		Title:       "Check Availability",
		Description: "See which pharmacies stock your medication before you go",
		Icon:        searchIcon,
	},
	{
		Title:       "Verified Pharmacies",
		Description: "Every listed pharmacy is licensed and verified",
		Icon:        shieldIcon,
	},
}

func FeaturesSection() g.Node {
	return h.Section(
		h.Class("bg-white py-16 md:py-24"),
		g.Attr("data-section", "features"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("text-center max-w-2xl mx-auto mb-12"),
				h.H2(
					h.Class("text-3xl md:text-4xl font-bold text-gray-900 mb-4"),
					g.Text("Why Choose Blessed Irembo"),
				),
				h.P(
					h.Class("text-lg text-gray-600"),
					g.Text("Everything you need to find the right pharmacy, in one place"),
				),
			),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f feature) g.Node {
					return h.Div(
						h.Class("bg-gray-50 rounded-lg p-6 text-center"),
						h.Div(
							h.Class("inline-flex items-center justify-center w-12 h-12 rounded-full bg-teal-100 text-teal-600 mb-4"),
							f.Icon("w-6 h-6"),
						),
						h.H3(h.Class("text-lg font-semibold text-gray-900 mb-2"), g.Text(f.Title)),
						h.P(h.Class("text-gray-600"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}
