package model

// MenuItem is one dish on a restaurant's menu.  Item ids are scoped
// to the restaurant that owns them.
//
// Fields:
//  ID         – item key within the restaurant, e.g. "bf-omelette".
//  Name       – display name, e.g. "Masala Omelette".
//  Category   – "Breakfast" | "Lunch" | "Dinner" | free text.
//  PriceCents – price in minor currency units.
//  Active     – inactive items are hidden from ordering.
type MenuItem struct {
	ID         string
	Name       string
	Category   string
	PriceCents int64
	Active     bool
}

// Restaurant represents a dining venue attached to a hotel.  The
// menu preserves insertion order on write and read.
type Restaurant struct {
	ID        string
	HotelID   string
	Name      string
	Cuisine   string
	OpenHours string
	Active    bool
	Menu      []MenuItem
}

// ActiveMenu returns the orderable subset of the menu in order.
func (r Restaurant) ActiveMenu() []MenuItem {
	out := make([]MenuItem, 0, len(r.Menu))
	for _, m := range r.Menu {
		if m.Active {
			out = append(out, m)
		}
	}
	return out
}
