// Package seed bundles the demo property set inserted by POST /api/seed.
package seed

import "villastay/internal/domain/catalog"

// Threshold is the property count at or above which seeding becomes a
// no-op. Repeated seed calls therefore insert the sample set at most
// once.
const Threshold = 10

// Properties returns a fresh copy of the bundled sample set.
func Properties() []catalog.Property {
	return []catalog.Property{
		{
			Title:         "Skyline Luxe Villa",
			Description:   strptr("A luxurious villa with panoramic city views and infinity pool."),
			PropertyType:  "villa",
			Location:      "Mumbai",
			Country:       "India",
			PricePerNight: floatptr(420),
			MaxGuests:     8,
			Bedrooms:      intptr(4),
			Bathrooms:     intptr(3),
			Amenities:     []string{"Pool", "WiFi", "Chef", "Parking", "Garden"},
			Images: []string{
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d98",
				"https://images.unsplash.com/photo-1499951360447-b19be8fe80f5",
			},
			Host: catalog.Host{Name: "Anaya Kapoor", Email: "anaya@example.com"},
		},
		{
			Title:         "Serene Farm Retreat",
			Description:   strptr("Peaceful farmhouse surrounded by lush fields and a private orchard."),
			PropertyType:  "farmhouse",
			Location:      "Pune",
			Country:       "India",
			PricePerNight: floatptr(220),
			MaxGuests:     6,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Bonfire", "WiFi", "Parking", "Pet Friendly"},
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511",
			},
			Host: catalog.Host{Name: "Rohit Verma", Email: "rohit@example.com"},
		},
		{
			Title:         "Modern Glass House",
			Description:   strptr("Contemporary glass house tucked in the hills with stunning sunsets."),
			PropertyType:  "villa",
			Location:      "Lonavala",
			Country:       "India",
			PricePerNight: floatptr(350),
			MaxGuests:     5,
			Bedrooms:      intptr(2),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Mountain View", "WiFi", "Hot Tub"},
			Images: []string{
				"https://images.unsplash.com/photo-1494526585095-c41746248156",
				"https://images.unsplash.com/photo-1499696010189-9d2150aee9f6",
			},
			Host: catalog.Host{Name: "Mira Shah", Email: "mira@example.com"},
		},
		{
			Title:         "Coastal Breeze Villa",
			Description:   strptr("Minimal, modern villa steps from a quiet beach with sea breeze."),
			PropertyType:  "villa",
			Location:      "Goa",
			Country:       "India",
			PricePerNight: floatptr(300),
			MaxGuests:     7,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(3),
			Amenities:     []string{"Beach Access", "Pool", "AC", "WiFi"},
			Images: []string{
				"https://images.unsplash.com/photo-1475855581690-80accde3ae2b",
				"https://images.unsplash.com/photo-1505692794403-34fdb2f1faac",
			},
			Host: catalog.Host{Name: "Elena Dsouza", Email: "elena@example.com"},
		},
		{
			Title:         "Riverside Farmhouse",
			Description:   strptr("Charming farmhouse along a riverside with sprawling lawns."),
			PropertyType:  "farmhouse",
			Location:      "Karjat",
			Country:       "India",
			PricePerNight: floatptr(180),
			MaxGuests:     6,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Bonfire", "Parking", "Pet Friendly", "BBQ"},
			Images: []string{
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511",
				"https://images.unsplash.com/photo-1460317442991-0ec209397118",
			},
			Host: catalog.Host{Name: "Dev Patel", Email: "dev@example.com"},
		},
		{
			Title:         "Forest Edge Cottage",
			Description:   strptr("Cozy cottage at the forest edge; perfect for quiet retreats."),
			PropertyType:  "cottage",
			Location:      "Coorg",
			Country:       "India",
			PricePerNight: floatptr(160),
			MaxGuests:     4,
			Bedrooms:      intptr(2),
			Bathrooms:     intptr(1),
			Amenities:     []string{"Fireplace", "Mountain View", "WiFi"},
			Images: []string{
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688",
			},
			Host: catalog.Host{Name: "Aarav Nair", Email: "aarav@example.com"},
		},
		{
			Title:         "Royal Heritage Mansion",
			Description:   strptr("Grand mansion restored with modern comforts and private courtyard."),
			PropertyType:  "mansion",
			Location:      "Jaipur",
			Country:       "India",
			PricePerNight: floatptr(550),
			MaxGuests:     10,
			Bedrooms:      intptr(6),
			Bathrooms:     intptr(5),
			Amenities:     []string{"Chef", "Butler", "WiFi", "Parking", "Garden"},
			Images: []string{
				"https://images.unsplash.com/photo-1501183638710-841dd1904471",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d98",
			},
			Host: catalog.Host{Name: "Rani Singh", Email: "rani@example.com"},
		},
		{
			Title:         "Cliffside Infinity Villa",
			Description:   strptr("Perched on a cliff with a dramatic infinity pool and sunset views."),
			PropertyType:  "villa",
			Location:      "Visakhapatnam",
			Country:       "India",
			PricePerNight: floatptr(480),
			MaxGuests:     8,
			Bedrooms:      intptr(4),
			Bathrooms:     intptr(4),
			Amenities:     []string{"Infinity Pool", "WiFi", "AC", "Chef"},
			Images: []string{
				"https://images.unsplash.com/photo-1455587734955-081b22074882",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858",
			},
			Host: catalog.Host{Name: "Kabir Rao", Email: "kabir@example.com"},
		},
		{
			Title:         "Vineyard Country House",
			Description:   strptr("Country farmhouse overlooking vineyards with rustic-chic interiors."),
			PropertyType:  "farmhouse",
			Location:      "Nashik",
			Country:       "India",
			PricePerNight: floatptr(210),
			MaxGuests:     5,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Winery Tour", "Bonfire", "WiFi"},
			Images: []string{
				"https://images.unsplash.com/photo-1496417263034-38ec4f0b665a",
				"https://images.unsplash.com/photo-1505691938895-1758d7feb511",
			},
			Host: catalog.Host{Name: "Neha Kulkarni", Email: "neha@example.com"},
		},
		{
			Title:         "Lakeside Minimal Villa",
			Description:   strptr("Ultra-minimal lakeside villa with floor-to-ceiling glass."),
			PropertyType:  "villa",
			Location:      "Udaipur",
			Country:       "India",
			PricePerNight: floatptr(390),
			MaxGuests:     6,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(3),
			Amenities:     []string{"Lake View", "WiFi", "Parking", "Chef"},
			Images: []string{
				"https://images.unsplash.com/photo-1484154218962-a197022b5858",
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d98",
			},
			Host: catalog.Host{Name: "Ishaan Mehta", Email: "ishaan@example.com"},
		},
		{
			Title:         "Tea Estate Bungalow",
			Description:   strptr("Colonial-era bungalow nestled within a working tea estate."),
			PropertyType:  "cottage",
			Location:      "Munnar",
			Country:       "India",
			PricePerNight: floatptr(190),
			MaxGuests:     5,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Garden", "WiFi", "Bonfire"},
			Images: []string{
				"https://images.unsplash.com/photo-1505691723518-36a5ac3b2d98",
				"https://images.unsplash.com/photo-1449844908441-8829872d2607",
			},
			Host: catalog.Host{Name: "Priya Iyer", Email: "priya@example.com"},
		},
		{
			Title:         "Desert Dune Villa",
			Description:   strptr("Stark, sculptural villa opening to desert dunes and starry skies."),
			PropertyType:  "villa",
			Location:      "Jaisalmer",
			Country:       "India",
			PricePerNight: floatptr(260),
			MaxGuests:     6,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Rooftop", "WiFi", "AC", "BBQ"},
			Images: []string{
				"https://images.unsplash.com/photo-1519710164239-da123dc03ef4",
				"https://images.unsplash.com/photo-1499696010189-9d2150aee9f6",
			},
			Host: catalog.Host{Name: "Zoya Khan", Email: "zoya@example.com"},
		},
		{
			Title:         "Himalayan View Chalet",
			Description:   strptr("Warm wooden chalet with sweeping Himalayan views and hot tub."),
			PropertyType:  "cottage",
			Location:      "Manali",
			Country:       "India",
			PricePerNight: floatptr(275),
			MaxGuests:     6,
			Bedrooms:      intptr(3),
			Bathrooms:     intptr(2),
			Amenities:     []string{"Mountain View", "Hot Tub", "Fireplace", "WiFi"},
			Images: []string{
				"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd",
				"https://images.unsplash.com/photo-1502673530728-f79b4cab31b1",
			},
			Host: catalog.Host{Name: "Arjun Malhotra", Email: "arjun@example.com"},
		},
	}
}

func strptr(s string) *string {
	return &s
}

func floatptr(f float64) *float64 {
	return &f
}

func intptr(i int) *int {
	return &i
}
