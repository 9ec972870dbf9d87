package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"hotel-console/internal/model"
)

// RestaurantRepo persists the restaurants collection, each record
// carrying its ordered menu.
type RestaurantRepo struct {
	store *Store[model.Restaurant]
}

func NewRestaurantRepo(path string, logger zerolog.Logger) *RestaurantRepo {
	return &RestaurantRepo{store: NewStore(Config[model.Restaurant]{
		Path:   path,
		Key:    func(rs model.Restaurant) string { return rs.ID },
		Encode: encodeRestaurant,
		Decode: decodeRestaurant,
		Clone:  cloneRestaurant,
		Check:  checkRestaurant,
		Logger: logger.With().Str("collection", "restaurants").Logger(),
	})}
}

func cloneRestaurant(rs model.Restaurant) model.Restaurant {
	rs.Menu = append([]model.MenuItem(nil), rs.Menu...)
	return rs
}

func (r *RestaurantRepo) Load() error { return r.store.Load() }

func (r *RestaurantRepo) SaveAll() error { return r.store.SaveAll() }

func (r *RestaurantRepo) ResolvedPath() string { return r.store.ResolvedPath() }

// Get returns the restaurant with the given id.
func (r *RestaurantRepo) Get(id string) (model.Restaurant, bool) { return r.store.Get(id) }

// List returns all restaurants in insertion order.
func (r *RestaurantRepo) List() []model.Restaurant { return r.store.List() }

// ListByHotel returns the restaurants of one hotel.
func (r *RestaurantRepo) ListByHotel(hotelID string) []model.Restaurant {
	return r.store.ListWhere(func(rs model.Restaurant) bool { return rs.HotelID == hotelID })
}

// CountActiveByHotel counts open restaurants of one hotel.
func (r *RestaurantRepo) CountActiveByHotel(hotelID string) int {
	return len(r.store.ListWhere(func(rs model.Restaurant) bool {
		return rs.HotelID == hotelID && rs.Active
	}))
}

// Upsert adds or replaces a restaurant by id.
func (r *RestaurantRepo) Upsert(rs model.Restaurant) error { return r.store.Upsert(rs) }

// Remove deletes a restaurant by id.
func (r *RestaurantRepo) Remove(id string) bool { return r.store.Remove(id) }

func checkRestaurant(_ []model.Restaurant, next model.Restaurant) error {
	if next.ID == "" {
		return ErrMissingID
	}
	return nil
}

type menuItemDoc struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"priceCents"`
	Active     *bool  `json:"active,omitempty"`
}

type restaurantDoc struct {
	ID        string        `json:"id"`
	HotelID   string        `json:"hotelId"`
	Name      string        `json:"name"`
	Cuisine   string        `json:"cuisine"`
	OpenHours string        `json:"openHours"`
	Active    *bool         `json:"active,omitempty"`
	Menu      []menuItemDoc `json:"menu"`
}

func encodeRestaurant(rs model.Restaurant) any {
	active := rs.Active
	menu := make([]menuItemDoc, 0, len(rs.Menu))
	for _, m := range rs.Menu {
		itemActive := m.Active
		menu = append(menu, menuItemDoc{
			ID:         m.ID,
			Name:       m.Name,
			Category:   m.Category,
			PriceCents: m.PriceCents,
			Active:     &itemActive,
		})
	}
	return restaurantDoc{
		ID:        rs.ID,
		HotelID:   rs.HotelID,
		Name:      rs.Name,
		Cuisine:   rs.Cuisine,
		OpenHours: rs.OpenHours,
		Active:    &active,
		Menu:      menu,
	}
}

func decodeRestaurant(raw json.RawMessage) (model.Restaurant, error) {
	var doc restaurantDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Restaurant{}, err
	}
	if doc.ID == "" {
		return model.Restaurant{}, fmt.Errorf("restaurant: %w", ErrMissingID)
	}
	rs := model.Restaurant{
		ID:        doc.ID,
		HotelID:   doc.HotelID,
		Name:      doc.Name,
		Cuisine:   doc.Cuisine,
		OpenHours: doc.OpenHours,
		Active:    true,
	}
	if doc.Active != nil {
		rs.Active = *doc.Active
	}
	for _, m := range doc.Menu {
		// Menu item ids are scoped to the restaurant; an item
		// without one is unaddressable and dropped.
		if m.ID == "" {
			continue
		}
		item := model.MenuItem{
			ID:         m.ID,
			Name:       m.Name,
			Category:   m.Category,
			PriceCents: m.PriceCents,
			Active:     true,
		}
		if m.Active != nil {
			item.Active = *m.Active
		}
		rs.Menu = append(rs.Menu, item)
	}
	return rs, nil
}
