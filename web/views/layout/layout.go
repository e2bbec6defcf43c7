package layout

import (
	"github.com/Kostaaa1/irembo/web/views/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Icon struct {
	Rel   string
	Href  string
	Sizes string
	Type  string
}

type Metadata struct {
	Title       string
	Description string
	Icons       []Icon
}

// Default is the head metadata shared by every page.
var Default = Metadata{
	Title:       components.BrandName,
	Description: "Connect with verified pharmacies nationwide. Search by location, check availability, and get the medication you need, when you need it.",
	Icons: []Icon{
		{Rel: "icon", Href: components.FaviconPath, Sizes: "32x32"},
		{Rel: "icon", Href: components.LogoPath, Sizes: "192x192", Type: "image/png"},
		{Rel: "icon", Href: components.LogoPath, Sizes: "512x512", Type: "image/png"},
		{Rel: "shortcut icon", Href: components.LogoPath},
		{Rel: "apple-touch-icon", Href: components.LogoPath, Sizes: "180x180"},
	},
}

const (
	fontsOrigin = "https://fonts.googleapis.com"
	fontsStatic = "https://fonts.gstatic.com"
	fontsURL    = fontsOrigin + "/css2?family=Geist:wght@100..900&family=Geist+Mono:wght@100..900&display=swap"

	fontVariables = `:root{--font-geist-sans:"Geist",ui-sans-serif,system-ui,sans-serif;--font-geist-mono:"Geist Mono",ui-monospace,monospace}body{font-family:var(--font-geist-sans)}`
)

// RootLayout wraps children in the html document with the head built from
// meta.
func RootLayout(meta Metadata, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				g.Group(g.Map(meta.Icons, iconLink)),
				h.Link(h.Rel("preconnect"), h.Href(fontsOrigin)),
				h.Link(h.Rel("preconnect"), h.Href(fontsStatic), g.Attr("crossorigin", "")),
				h.Link(h.Rel("stylesheet"), h.Href(fontsURL)),
				h.Link(h.Rel("stylesheet"), h.Href(components.StylesheetPath)),
				h.StyleEl(g.Raw(fontVariables)),
			),
			h.Body(
				h.Class("antialiased"),
				g.Group(children),
			),
		),
	)
}

func iconLink(icon Icon) g.Node {
	return h.Link(
		h.Rel(icon.Rel),
		h.Href(icon.Href),
		g.If(icon.Sizes != "", g.Attr("sizes", icon.Sizes)),
		g.If(icon.Type != "", h.Type(icon.Type)),
	)
}
