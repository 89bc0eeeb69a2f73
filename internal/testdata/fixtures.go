// Package testdata provides deterministic marketplace fixtures for tests.
package testdata

import "github.com/Calphius18/service-provider/internal/catalog"

// Categories returns a small, stable category set.
func Categories() []catalog.Category {
	return []catalog.Category{
		{ID: 1, Name: "Plumbing", Icon: "https://cdn.example.com/icons/plumbing.png"},
		{ID: 2, Name: "Cleaning", Icon: "https://cdn.example.com/icons/cleaning.png"},
		{ID: 3, Name: "Electrical", Icon: "https://cdn.example.com/icons/electrical.png"},
	}
}

// Providers returns providers in a fixed order covering both categories and
// the full rating range. Provider 6 references a category that does not
// exist, for exercising the category-join drop rule.
func Providers() []catalog.Provider {
	return []catalog.Provider{
		{
			ID: 1, Name: "Ace Plumbing Co", CategoryID: 1, Rating: 4.5,
			PricePerHour: 2000, ExperienceYears: 8,
			Description: "Residential and commercial plumbing.",
			Image:       "https://cdn.example.com/p/1.jpg",
			Gallery:     []string{"kitchen-repipe.jpg", "bathroom-fit.jpg"},
			Location:    catalog.Location{Lat: 6.5244, Lng: 3.3792, City: "Lagos"},
		},
		{
			ID: 2, Name: "Sparkle Cleaners", CategoryID: 2, Rating: 3.8,
			PricePerHour: 1500, ExperienceYears: 4,
			Description: "Deep cleaning for homes and offices.",
			Image:       "https://cdn.example.com/p/2.jpg",
			Location:    catalog.Location{Lat: 9.0765, Lng: 7.3986, City: "Abuja"},
		},
		{
			ID: 3, Name: "VoltWorks", CategoryID: 3, Rating: 5,
			PricePerHour: 3000, ExperienceYears: 12,
			Description: "Licensed electrical installations.",
			Image:       "https://cdn.example.com/p/3.jpg",
			Location:    catalog.Location{Lat: 6.4654, Lng: 3.4064, City: "Lagos"},
		},
		{
			ID: 4, Name: "Budget Plumbers", CategoryID: 1, Rating: 2.9,
			PricePerHour: 900, ExperienceYears: 2,
			Description: "Affordable fixes, fast.",
			Image:       "https://cdn.example.com/p/4.jpg",
			Location:    catalog.Location{Lat: 7.3775, Lng: 3.947, City: "Ibadan"},
		},
		{
			ID: 5, Name: "Shiny Homes", CategoryID: 2, Rating: 4.5,
			PricePerHour: 1800, ExperienceYears: 6,
			Description: "Move-in and move-out cleaning.",
			Image:       "https://cdn.example.com/p/5.jpg",
			Location:    catalog.Location{Lat: 6.4531, Lng: 3.3958, City: "Lagos"},
		},
		{
			ID: 6, Name: "Phantom Services", CategoryID: 99, Rating: 4.9,
			PricePerHour: 5000, ExperienceYears: 10,
			Description: "Category unknown to the client.",
			Image:       "https://cdn.example.com/p/6.jpg",
			Location:    catalog.Location{Lat: 6.6018, Lng: 3.3515, City: "Ikeja"},
		},
	}
}
