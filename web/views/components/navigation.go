package components

const (
	RouteHome             = "/"
	RoutePharmacies       = "/pharmacies"
	RouteLogin            = "/login"
	RouteGetStarted       = "/get-started"
	RouteRegisterPharmacy = "/register-pharmacy"
	RouteAbout            = "/about"
	RouteHowItWorks       = "/how-it-works"
	RouteForPharmacies    = "/for-pharmacies"
	RoutePrivacy          = "/privacy"
)

type navigationLink struct {
	Text  string
	Href  string
	Class string
}

var navigationLinks = []navigationLink{
	{Text: "Home", Href: RouteHome, Class: "text-teal-600 font-medium hover:text-teal-700 transition-colors"},
	{Text: "Find Pharmacies", Href: RoutePharmacies, Class: "text-gray-700 font-medium hover:text-teal-600 transition-colors"},
}

var actionLinks = []navigationLink{
	{Text: "Login", Href: RouteLogin, Class: "text-gray-700 font-medium hover:text-teal-600 transition-colors"},
	{Text: "Get Started", Href: RouteGetStarted, Class: "bg-teal-600 text-white px-6 py-2 rounded-md font-medium hover:bg-teal-700 transition-colors"},
}

var quickLinks = []navigationLink{
	{Text: "About Us", Href: RouteAbout},
	{Text: "How it Works", Href: RouteHowItWorks},
	{Text: "For Pharmacies", Href: RouteForPharmacies},
	{Text: "Privacy Policy", Href: RoutePrivacy},
}
