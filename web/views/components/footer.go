package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const copyright = "© 2025 Blessed Irembo. All rights reserved."

type contactMethod struct {
	Text string
	Href string // empty for plain text entries
	Icon func(class string) g.Node
}

var contactMethods = []contactMethod{
	{Text: "support@blessedirembo.rw", Href: "mailto:support@blessedirembo.rw", Icon: mailIcon},
	{Text: "+250 788 000 000", Href: "tel:+250788000000", Icon: phoneIcon},
	{Text: "Kigali, Rwanda", Icon: pinIcon},
}

// Footer renders the brand block, quick links, contact details and the
// copyright line.
func Footer() g.Node {
	return h.Footer(
		h.Class("bg-white border-t border-gray-200"),
		g.Attr("data-section", "footer"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8"),

				h.Div(
					h.Class("space-y-4"),
					h.Div(h.Class("flex items-center gap-3"), logo(false), brandName()),
					h.P(h.Class("text-gray-600 text-sm leading-relaxed"), g.Text(BrandDescription)),
				),

				h.Div(
					h.H3(h.Class("text-gray-900 font-semibold mb-4"), g.Text("Quick Links")),
					h.Ul(
						h.Class("space-y-3"),
						g.Attr("data-list", "quick-links"),
						g.Group(g.Map(quickLinks, func(link navigationLink) g.Node {
							return h.Li(
								h.A(
									h.Href(link.Href),
									h.Class("text-gray-600 hover:text-teal-600 transition-colors text-sm"),
									g.Text(link.Text),
								),
							)
						})),
					),
				),

				h.Div(
					h.H3(h.Class("text-gray-900 font-semibold mb-4"), g.Text("Contact")),
					h.Ul(
						h.Class("space-y-3"),
						g.Attr("data-list", "contact"),
						g.Group(g.Map(contactMethods, contactItem)),
					),
				),
			),

			h.Div(
				h.Class("border-t border-gray-200 mt-12 pt-8 text-center"),
				h.P(h.Class("text-gray-600 text-sm"), g.Text(copyright)),
			),
		),
	)
}

func contactItem(m contactMethod) g.Node {
	var text g.Node
	if m.Href != "" {
		text = h.A(h.Href(m.Href), h.Class("hover:text-teal-600 transition-colors"), g.Text(m.Text))
	} else {
		text = h.Span(g.Text(m.Text))
	}
	return h.Li(
		h.Class("flex items-start text-gray-600 text-sm"),
		m.Icon("w-5 h-5 mr-2 mt-0.5 shrink-0"),
		text,
	)
}
