package domain

import "strings"

// Villa holds the property constants shown across every section
type Villa struct {
	Name       string `toml:"name"`
	Address    string `toml:"address"`
	BookingURL string `toml:"booking_url"`
	Tagline    string `toml:"tagline"`
	Instagram  string `toml:"instagram"`
	X          string `toml:"x"`
}

// Contact is the host's contact card
type Contact struct {
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
	Email string `toml:"email"`
}

// WhatsAppURL builds a wa.me link from the digits of the phone number
func (c Contact) WhatsAppURL() string {
	var b strings.Builder
	for _, r := range c.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "https://wa.me/" + b.String()
}

// Review is one guest review. Rating is out of 10.
type Review struct {
	Name         string `toml:"name" json:"name"`
	Date         string `toml:"date" json:"date"`
	Rating       int    `toml:"rating" json:"rating"`
	Title        string `toml:"title" json:"title"`
	Comment      string `toml:"comment" json:"comment"`
	StayDuration string `toml:"stay_duration" json:"stay_duration"`
}

// Stars converts the ten-point rating to filled stars out of five
func (r Review) Stars() int {
	stars := (r.Rating + 1) / 2
	return min(max(stars, 0), 5)
}

// GalleryImage is one slide of the photo gallery
type GalleryImage struct {
	Src string `toml:"src" json:"src"`
	Alt string `toml:"alt" json:"alt"`
}

// Amenity is a feature of the property
type Amenity struct {
	Name string `toml:"name"`
	Icon string `toml:"icon"`
}

// Attraction is a nearby point of interest with its own detail page
type Attraction struct {
	Slug        string `toml:"slug"`
	Title       string `toml:"title"`
	Distance    string `toml:"distance"`
	Description string `toml:"description"`
}

// Restaurant is a nearby place to eat
type Restaurant struct {
	Name        string `toml:"name"`
	Cuisine     string `toml:"cuisine"`
	Distance    string `toml:"distance"`
	Description string `toml:"description"`
	PriceRange  string `toml:"price_range"`
}

// CarouselState is the last known position of a named carousel
type CarouselState struct {
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	Index      int    `json:"index"`
	PageSize   int    `json:"page_size"`
	PageCount  int    `json:"page_count"`
	ActivePage int    `json:"active_page"`
	Len        int    `json:"len"`
	Running    bool   `json:"running"`
}
