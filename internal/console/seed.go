package console

import (
	"fmt"

	"hotel-console/internal/model"
)

// sampleCatalogue returns the demo data set: three hotels, each
// with rooms and a restaurant carrying a non-empty menu.
func sampleCatalogue() ([]model.Hotel, []model.Room, []model.Restaurant) {
	hotels := []model.Hotel{
		{ID: "HTL-0001", Name: "Harbor View", Stars: 4, Address: "1 Quay Street", BaseRateCents: 12900},
		{ID: "HTL-0002", Name: "Mountain Lodge", Stars: 3, Address: "88 Ridge Road", BaseRateCents: 9500},
		{ID: "HTL-0003", Name: "Grand Meridian", Stars: 5, Address: "200 Palace Avenue", BaseRateCents: 24900},
	}

	rooms := []model.Room{
		{HotelID: "HTL-0001", Number: 101, TypeID: "RT-STD", Beds: 2, SizeSqm: 22, Amenities: []string{"wifi", "tv"}, Active: true},
		{HotelID: "HTL-0001", Number: 102, TypeID: "RT-DELUXE", Beds: 2, SizeSqm: 30, Amenities: []string{"wifi", "tv", "minibar"}, Active: true},
		{HotelID: "HTL-0001", Number: 201, TypeID: "RT-SUITE", Beds: 3, SizeSqm: 48, Amenities: []string{"wifi", "tv", "minibar", "balcony"}, Active: true},
		{HotelID: "HTL-0002", Number: 1, TypeID: "RT-STD", Beds: 1, SizeSqm: 18, Amenities: []string{"wifi"}, Active: true},
		{HotelID: "HTL-0002", Number: 2, TypeID: "RT-STD", Beds: 2, SizeSqm: 20, Amenities: []string{"wifi", "fireplace"}, Active: true},
		{HotelID: "HTL-0003", Number: 501, TypeID: "RT-SUITE", Beds: 2, SizeSqm: 64, Amenities: []string{"wifi", "tv", "minibar", "jacuzzi"}, Active: true},
		{HotelID: "HTL-0003", Number: 502, TypeID: "RT-DELUXE", Beds: 2, SizeSqm: 36, Amenities: []string{"wifi", "tv", "minibar"}, Active: true},
	}

	restaurants := []model.Restaurant{
		{
			ID: "RST-0001", HotelID: "HTL-0001", Name: "The Galley", Cuisine: "Seafood",
			OpenHours: "18:00-23:00", Active: true,
			Menu: []model.MenuItem{
				{ID: "RST-0001-M001", Name: "Clam Chowder", Category: "Dinner", PriceCents: 1450, Active: true},
				{ID: "RST-0001-M002", Name: "Grilled Salmon", Category: "Dinner", PriceCents: 2850, Active: true},
				{ID: "RST-0001-M003", Name: "Eggs Benedict", Category: "Breakfast", PriceCents: 1200, Active: true},
			},
		},
		{
			ID: "RST-0002", HotelID: "HTL-0002", Name: "Summit Grill", Cuisine: "Alpine",
			OpenHours: "07:00-22:00", Active: true,
			Menu: []model.MenuItem{
				{ID: "RST-0002-M001", Name: "Raclette", Category: "Dinner", PriceCents: 2100, Active: true},
				{ID: "RST-0002-M002", Name: "Mountain Breakfast", Category: "Breakfast", PriceCents: 1550, Active: true},
			},
		},
		{
			ID: "RST-0003", HotelID: "HTL-0003", Name: "Le Meridien", Cuisine: "French",
			OpenHours: "19:00-23:30", Active: true,
			Menu: []model.MenuItem{
				{ID: "RST-0003-M001", Name: "Duck Confit", Category: "Dinner", PriceCents: 3900, Active: true},
				{ID: "RST-0003-M002", Name: "Onion Soup", Category: "Dinner", PriceCents: 1600, Active: true},
				{ID: "RST-0003-M003", Name: "Croissant Plate", Category: "Breakfast", PriceCents: 950, Active: true},
			},
		},
	}

	return hotels, rooms, restaurants
}

// seedSampleData loads the demo catalogue.  Existing records with
// the same ids are overwritten; everything else is left alone.
func (a *App) seedSampleData() error {
	hotels, rooms, restaurants := sampleCatalogue()
	for _, h := range hotels {
		if err := a.Hotels.Upsert(h); err != nil {
			return fmt.Errorf("seed hotel %s: %w", h.ID, err)
		}
	}
	for _, r := range rooms {
		if err := a.Rooms.Upsert(r); err != nil {
			return fmt.Errorf("seed room %s %d: %w", r.HotelID, r.Number, err)
		}
	}
	for _, rs := range restaurants {
		if err := a.Restaurants.Upsert(rs); err != nil {
			return fmt.Errorf("seed restaurant %s: %w", rs.ID, err)
		}
	}
	if err := a.Hotels.SaveAll(); err != nil {
		return err
	}
	if err := a.Rooms.SaveAll(); err != nil {
		return err
	}
	return a.Restaurants.SaveAll()
}

func (a *App) loadSampleData() {
	banner("Load sample data")
	if !a.io.confirm("Load the demo hotels, rooms and restaurants?") {
		return
	}
	if err := a.seedSampleData(); err != nil {
		a.Log.Error().Err(err).Msg("seed sample data")
		fmt.Println("Could not load sample data:", err)
		return
	}
	fmt.Println("Sample data loaded.")
}
