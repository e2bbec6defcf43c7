package components

// Static files referenced by the page. They are supplied by the public
// directory, nothing here generates them.
const (
	FaviconPath     = "/favicon.ico"
	LogoPath        = "/logo1.png"
	HeroImagePath   = "/pharmacist1.jpg"
	OwnersImagePath = "/pharmacist2.jpg"
	StylesheetPath  = "/styles.css"
)

var Assets = []string{
	FaviconPath,
	LogoPath,
	HeroImagePath,
	OwnersImagePath,
	StylesheetPath,
}

const (
	BrandName        = "Blessed Irembo"
	BrandDescription = "Connecting Rwandans with trusted pharmacies nationwide. Find medication quickly and easily."
)
