package home

import (
	"github.com/Kostaaa1/irembo/web/views/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home is the landing page body. Sections always render in this order.
func Home() g.Node {
	return Shell(
		components.HeroSection(),
		components.FeaturesSection(),
		components.PharmacyOwnersSection(),
		components.CTASection(),
	)
}

// Shell places content between the site header and footer.
func Shell(content ...g.Node) g.Node {
	return h.Div(
		h.Class("min-h-screen flex flex-col"),
		components.Header(),
		h.Main(h.Class("grow"), g.Group(content)),
		components.Footer(),
	)
}
