package home

import (
	"testing"

	"github.com/Kostaaa1/irembo/web/views/components"
	"github.com/Kostaaa1/irembo/web/views/viewtest"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func sectionOrder(n *html.Node) []string {
	var order []string
	for _, s := range viewtest.FindAll(n, viewtest.HasAttr("data-section")) {
		name, _ := viewtest.Attr(s, "data-section")
		order = append(order, name)
	}
	return order
}

func TestHomeSectionOrder(t *testing.T) {
	t.Parallel()

	doc := viewtest.Parse(t, Home())

	require.Equal(t, []string{
		"header",
		"hero",
		"features",
		"pharmacy-owners",
		"cta",
		"footer",
	}, sectionOrder(doc))

	main := viewtest.Find(t, doc, viewtest.Tag("main"))
	require.Equal(t, []string{"hero", "features", "pharmacy-owners", "cta"}, sectionOrder(main))
}

func TestHomeSearchLinks(t *testing.T) {
	t.Parallel()

	doc := viewtest.Parse(t, Home())
	main := viewtest.Find(t, doc, viewtest.Tag("main"))

	for _, name := range []string{"hero", "cta"} {
		section := viewtest.Find(t, main, viewtest.WithAttr("data-section", name))

		var search int
		for _, link := range viewtest.Links(section) {
			if link.Href == components.RoutePharmacies {
				search++
			}
		}
		require.Equal(t, 1, search, name)
	}
}

func TestShell(t *testing.T) {
	t.Parallel()

	doc := viewtest.Parse(t, Shell(components.NotFound()))
	require.Equal(t, []string{"header", "not-found", "footer"}, sectionOrder(doc))
}
