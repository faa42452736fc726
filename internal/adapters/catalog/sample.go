package catalog

import "github.com/okian/weekender/internal/domain/model"

// Sample returns the built-in NYC catalog. Each call returns a fresh copy.
func Sample() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Title:       "Central Park Summer Concert",
			Description: "Free outdoor concert featuring local NYC bands",
			Date:        "2025-08-02",
			Time:        "2:00 PM",
			Venue:       "Central Park Bandshell",
			Address:     "Central Park, Manhattan, NY",
			Category:    model.CategoryMusic,
			PriceRange:  model.PriceFree,
			AgeGroups:   []model.AgeGroup{model.AgeFamily, model.AgeAdults},
			Source:      model.SourceNYC,
			Link:        "https://www.centralparknyc.org/activities/events",
		},
		{
			ID:          "2",
			Title:       "Brooklyn Bridge Park Family Festival",
			Description: "Interactive activities and games for kids and families",
			Date:        "2025-08-02",
			Time:        "10:00 AM",
			Venue:       "Brooklyn Bridge Park",
			Address:     "Brooklyn, NY",
			Category:    model.CategoryFamily,
			PriceRange:  model.PriceFree,
			AgeGroups:   []model.AgeGroup{model.AgeKids, model.AgeFamily},
			Source:      model.SourceNYC,
			Link:        "https://www.brooklynbridgepark.org/events",
		},
		{
			ID:          "3",
			Title:       "Museum of Natural History Special Exhibit",
			Description: "Interactive dinosaur exhibit perfect for curious minds",
			Date:        "2025-08-03",
			Time:        "11:00 AM",
			Venue:       "American Museum of Natural History",
			Address:     "Upper West Side, Manhattan, NY",
			Category:    model.CategoryEducational,
			PriceRange:  model.PriceMedium,
			AgeGroups:   []model.AgeGroup{model.AgeKids, model.AgeFamily, model.AgeAdults},
			Source:      model.SourceTicketmaster,
			Link:        "https://www.amnh.org/exhibitions",
		},
	}
}
