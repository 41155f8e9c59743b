package catalog

import "github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"

func money(amount float64, currency string) *domain.Money {
	return &domain.Money{Amount: amount, Currency: currency}
}

// builtinEntries is the static explore content. IDs are stable: saved items
// reference them across app restarts.
func builtinEntries() []Entry {
	return []Entry{
		{
			ID:          "dest-paris",
			Category:    domain.SavedCategoryDestination,
			Title:       "Paris",
			Location:    "France",
			Image:       "images/destinations/paris.jpg",
			Rating:      4.8,
			Description: "The city of light: museums, cafés, and the Seine.",
			Featured:    true,
		},
		{
			ID:          "dest-kyoto",
			Category:    domain.SavedCategoryDestination,
			Title:       "Kyoto",
			Location:    "Japan",
			Image:       "images/destinations/kyoto.jpg",
			Rating:      4.9,
			Description: "Temples, gardens, and the old imperial capital.",
			Featured:    true,
		},
		{
			ID:          "dest-lisbon",
			Category:    domain.SavedCategoryDestination,
			Title:       "Lisbon",
			Location:    "Portugal",
			Image:       "images/destinations/lisbon.jpg",
			Rating:      4.6,
			Description: "Hills, trams, and pastéis de nata by the Tagus.",
		},
		{
			ID:          "dest-marrakech",
			Category:    domain.SavedCategoryDestination,
			Title:       "Marrakech",
			Location:    "Morocco",
			Image:       "images/destinations/marrakech.jpg",
			Rating:      4.5,
			Description: "Souks, riads, and the Jemaa el-Fnaa at dusk.",
		},
		{
			ID:          "dest-cusco",
			Category:    domain.SavedCategoryDestination,
			Title:       "Cusco",
			Location:    "Peru",
			Image:       "images/destinations/cusco.jpg",
			Rating:      4.7,
			Description: "Gateway to the Sacred Valley and Machu Picchu.",
		},
		{
			ID:       "hotel-le-marais",
			Category: domain.SavedCategoryHotel,
			Title:    "Hôtel Le Marais",
			Location: "Paris, France",
			Image:    "images/hotels/le-marais.jpg",
			Rating:   4.4,
			Price:    money(210, "EUR"),
			Featured: true,
		},
		{
			ID:       "hotel-gion-ryokan",
			Category: domain.SavedCategoryHotel,
			Title:    "Gion Ryokan",
			Location: "Kyoto, Japan",
			Image:    "images/hotels/gion-ryokan.jpg",
			Rating:   4.8,
			Price:    money(32000, "JPY"),
		},
		{
			ID:       "hotel-alfama-view",
			Category: domain.SavedCategoryHotel,
			Title:    "Alfama View House",
			Location: "Lisbon, Portugal",
			Image:    "images/hotels/alfama-view.jpg",
			Rating:   4.3,
			Price:    money(145, "EUR"),
		},
		{
			ID:       "attr-louvre",
			Category: domain.SavedCategoryAttraction,
			Title:    "Louvre Museum",
			Location: "Paris, France",
			Image:    "images/attractions/louvre.jpg",
			Rating:   4.7,
			Price:    money(17, "EUR"),
			Featured: true,
		},
		{
			ID:       "attr-fushimi-inari",
			Category: domain.SavedCategoryAttraction,
			Title:    "Fushimi Inari Shrine",
			Location: "Kyoto, Japan",
			Image:    "images/attractions/fushimi-inari.jpg",
			Rating:   4.9,
		},
		{
			ID:       "attr-belem-tower",
			Category: domain.SavedCategoryAttraction,
			Title:    "Belém Tower",
			Location: "Lisbon, Portugal",
			Image:    "images/attractions/belem-tower.jpg",
			Rating:   4.4,
			Price:    money(8, "EUR"),
		},
		{
			ID:       "attr-machu-picchu",
			Category: domain.SavedCategoryAttraction,
			Title:    "Machu Picchu",
			Location: "Cusco, Peru",
			Image:    "images/attractions/machu-picchu.jpg",
			Rating:   5.0,
			Price:    money(152, "PEN"),
			Featured: true,
		},
	}
}
