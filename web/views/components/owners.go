package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type benefit struct {
	Title       string
	Description string
}

var benefits = []benefit{
	{Title: "3-Month Free Trial", Description: "Get started with no upfront costs"},
	{Title: "Increased Visibility", Description: "Reach customers across Rwanda"},
	{Title: "Direct Customer Inquiries", Description: "Manage all customer questions in one place"},
}

// PharmacyOwnersSection pitches the platform to pharmacy owners. Benefits
// render in declaration order.
func PharmacyOwnersSection() g.Node {
	return h.Section(
		h.Class("bg-gray-50 py-16 md:py-24"),
		g.Attr("data-section", "pharmacy-owners"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-12 items-center"),

				h.Div(
					h.Class("relative h-96 md:h-[500px] order-2 md:order-1"),
					h.Img(
						h.Src(OwnersImagePath),
						h.Alt("Pharmacy owner working"),
						h.Class("absolute inset-0 w-full h-full object-cover rounded-lg shadow-lg"),
						g.Attr("loading", "lazy"),
					),
				),

				h.Div(
					h.Class("space-y-6 order-1 md:order-2"),
					h.H2(
						h.Class("text-3xl md:text-4xl font-bold text-gray-900"),
						g.Text("For Pharmacy Owners"),
					),
					h.P(
						h.Class("text-lg text-gray-600 leading-relaxed"),
						g.Text("Join Rwanda's leading pharmacy network and connect with customers looking for your services."),
					),
					h.Div(
						h.Class("space-y-4"),
						g.Attr("data-list", "benefits"),
						g.Group(g.Map(benefits, benefitItem)),
					),
					h.Div(
						h.Class("pt-4"),
						h.A(
							h.Href(RouteRegisterPharmacy),
							h.Class("inline-flex items-center bg-teal-600 text-white px-6 py-3 rounded-md font-medium hover:bg-teal-700 transition-colors"),
							g.Text("Register Your Pharmacy"),
							chevronIcon("w-5 h-5 ml-2"),
						),
					),
				),
			),
		),
	)
}

func benefitItem(b benefit) g.Node {
	return h.Div(
		h.Class("flex items-start"),
		h.Div(h.Class("shrink-0 mt-1"), checkmarkIcon("w-6 h-6 text-teal-600")),
		h.Div(
			h.Class("ml-3"),
			h.H3(h.Class("text-lg font-semibold text-gray-900"), g.Text(b.Title)),
			h.P(h.Class("text-gray-600"), g.Text(b.Description)),
		),
	)
}
