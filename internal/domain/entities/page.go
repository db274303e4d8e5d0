package entities

// Page identifies one navigable screen of the application.
type Page string

const (
	PageHome               Page = "Home"
	PageDashboard          Page = "Dashboard"
	PageDiseaseDetection   Page = "Disease Detection"
	PageCropRecommendation Page = "Crop Recommendation"
	PageSchemes            Page = "Schemes & Benefits"
	PageSatellite          Page = "Satellite Imagery"
	PageFertilizerHub      Page = "Fertilizer Hub"
	PageAbout              Page = "About Us"
	PageContact            Page = "Contact Us"
	PageLogin              Page = "Login"
	PageSignUp             Page = "Sign Up"
)

// AllPages lists every navigable page. The set is closed: persisted or
// client-supplied values outside it must be rejected at the boundary.
var AllPages = []Page{
	PageHome,
	PageDashboard,
	PageDiseaseDetection,
	PageCropRecommendation,
	PageSchemes,
	PageSatellite,
	PageFertilizerHub,
	PageAbout,
	PageContact,
	PageLogin,
	PageSignUp,
}

var protectedPages = map[Page]bool{
	PageDashboard:          true,
	PageDiseaseDetection:   true,
	PageCropRecommendation: true,
	PageSchemes:            true,
	PageSatellite:          true,
	PageFertilizerHub:      true,
}

// ParsePage validates a raw string against the closed page set.
func ParsePage(raw string) (Page, bool) {
	for _, p := range AllPages {
		if string(p) == raw {
			return p, true
		}
	}
	return "", false
}

// Protected reports whether the page is reachable only when authenticated.
func (p Page) Protected() bool {
	return protectedPages[p]
}

var pageTitleKeys = map[Page]string{
	PageHome:               "page.home",
	PageDashboard:          "page.dashboard",
	PageDiseaseDetection:   "page.diseaseDetection",
	PageCropRecommendation: "page.cropRecommendation",
	PageSchemes:            "page.schemes",
	PageSatellite:          "page.satellite",
	PageFertilizerHub:      "page.fertilizerHub",
	PageAbout:              "page.about",
	PageContact:            "page.contact",
	PageLogin:              "page.login",
	PageSignUp:             "page.signup",
}

// TitleKey returns the i18n key for the page's display title.
func (p Page) TitleKey() string {
	return pageTitleKeys[p]
}

func (p Page) String() string {
	return string(p)
}
