package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"hotel-console/internal/model"
)

// BookingRepo persists the bookings collection.  Booking items are
// a tagged union on disk: every item document carries a "kind"
// discriminant naming its variant.  Items with an unrecognized tag
// are dropped individually; the booking and its remaining items
// still load.
//
// The store enforces nothing across bookings: double-booking a room
// is checked by the console through ListByHotel/ListActive before
// it creates a conflicting stay.
type BookingRepo struct {
	store  *Store[model.Booking]
	logger zerolog.Logger
}

func NewBookingRepo(path string, logger zerolog.Logger) *BookingRepo {
	r := &BookingRepo{logger: logger.With().Str("collection", "bookings").Logger()}
	r.store = NewStore(Config[model.Booking]{
		Path:   path,
		Key:    func(b model.Booking) string { return b.BookingID },
		Encode: encodeBooking,
		Decode: r.decodeBooking,
		Clone:  cloneBooking,
		Check:  checkBooking,
		Logger: r.logger,
	})
	return r
}

func cloneBooking(b model.Booking) model.Booking {
	items := make([]model.BookingItem, 0, len(b.Items))
	for _, it := range b.Items {
		if stay, ok := it.(model.RoomStayItem); ok {
			stay.Occupants = append([]model.Occupant(nil), stay.Occupants...)
			items = append(items, stay)
			continue
		}
		items = append(items, it)
	}
	b.Items = items
	return b
}

func (r *BookingRepo) Load() error { return r.store.Load() }

func (r *BookingRepo) SaveAll() error { return r.store.SaveAll() }

func (r *BookingRepo) ResolvedPath() string { return r.store.ResolvedPath() }

// Get returns the booking with the given id.
func (r *BookingRepo) Get(bookingID string) (model.Booking, bool) {
	return r.store.Get(bookingID)
}

// List returns all bookings in insertion order.
func (r *BookingRepo) List() []model.Booking { return r.store.List() }

// ListActive returns bookings still in the ACTIVE state.
func (r *BookingRepo) ListActive() []model.Booking {
	return r.store.ListWhere(func(b model.Booking) bool { return b.Status == model.BookingActive })
}

// ListByHotel returns the bookings made against one hotel.
func (r *BookingRepo) ListByHotel(hotelID string) []model.Booking {
	return r.store.ListWhere(func(b model.Booking) bool { return b.HotelID == hotelID })
}

// ListByGuest returns the bookings whose primary guest matches.
func (r *BookingRepo) ListByGuest(guestID string) []model.Booking {
	return r.store.ListWhere(func(b model.Booking) bool { return b.PrimaryGuestID == guestID })
}

// Upsert adds or replaces a booking; an empty BookingID is
// rejected with ErrMissingID.
func (r *BookingRepo) Upsert(b model.Booking) error { return r.store.Upsert(b) }

// Remove deletes a booking by id.
func (r *BookingRepo) Remove(bookingID string) bool { return r.store.Remove(bookingID) }

func checkBooking(_ []model.Booking, next model.Booking) error {
	if next.BookingID == "" {
		return ErrMissingID
	}
	return nil
}

type occupantDoc struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type roomStayDoc struct {
	Kind              string        `json:"kind"`
	HotelID           *string       `json:"hotelId"`
	RoomNumber        *int          `json:"roomNumber"`
	Nights            *int          `json:"nights,omitempty"`
	NightlyRateLocked int64         `json:"nightlyRateLocked"`
	Occupants         []occupantDoc `json:"occupants"`
}

type orderLineDoc struct {
	Kind              string `json:"kind"`
	LineID            string `json:"lineId"`
	RestaurantID      string `json:"restaurantId"`
	Category          string `json:"category"`
	MenuItemID        string `json:"menuItemId"`
	NameSnapshot      string `json:"nameSnapshot"`
	UnitPriceSnapshot int64  `json:"unitPriceSnapshot"`
	Qty               *int   `json:"qty,omitempty"`
	BilledRoomNumber  int    `json:"billedRoomNumber"`
	TakenByUsername   string `json:"takenByUsername"`
	OrderedByGuestID  string `json:"orderedByGuestId"`
	CreatedAt         int64  `json:"createdAt"`
}

type bookingDoc struct {
	BookingID      string            `json:"bookingId"`
	HotelID        string            `json:"hotelId"`
	Status         string            `json:"status"`
	CreatedAt      int64             `json:"createdAt"`
	UpdatedAt      int64             `json:"updatedAt"`
	PrimaryGuestID string            `json:"primaryGuestId"`
	Items          []json.RawMessage `json:"items"`
}

func encodeBookingItem(it model.BookingItem) any {
	switch v := it.(type) {
	case model.RoomStayItem:
		hotelID, roomNumber, nights := v.HotelID, v.RoomNumber, v.Nights
		occ := make([]occupantDoc, 0, len(v.Occupants))
		for _, g := range v.Occupants {
			occ = append(occ, occupantDoc{
				UserID:    g.UserID,
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Address:   g.Address,
				Phone:     g.Phone,
			})
		}
		return roomStayDoc{
			Kind:              model.ItemKindRoomStay,
			HotelID:           &hotelID,
			RoomNumber:        &roomNumber,
			Nights:            &nights,
			NightlyRateLocked: v.NightlyRateLocked,
			Occupants:         occ,
		}
	case model.RestaurantOrderLine:
		qty := v.Qty
		return orderLineDoc{
			Kind:              model.ItemKindRestaurantOrder,
			LineID:            v.LineID,
			RestaurantID:      v.RestaurantID,
			Category:          v.Category,
			MenuItemID:        v.MenuItemID,
			NameSnapshot:      v.NameSnapshot,
			UnitPriceSnapshot: v.UnitPriceSnapshot,
			Qty:               &qty,
			BilledRoomNumber:  v.BilledRoomNumber,
			TakenByUsername:   v.TakenByUsername,
			OrderedByGuestID:  v.OrderedByGuestID,
			CreatedAt:         v.CreatedAt,
		}
	default:
		return nil
	}
}

func decodeBookingItem(raw json.RawMessage) (model.BookingItem, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch probe.Kind {
	case model.ItemKindRoomStay:
		var doc roomStayDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if doc.HotelID == nil || *doc.HotelID == "" {
			return nil, fmt.Errorf("room stay: missing hotelId")
		}
		if doc.RoomNumber == nil {
			return nil, fmt.Errorf("room stay: missing roomNumber")
		}
		stay := model.RoomStayItem{
			HotelID:           *doc.HotelID,
			RoomNumber:        *doc.RoomNumber,
			Nights:            1,
			NightlyRateLocked: doc.NightlyRateLocked,
		}
		if doc.Nights != nil && *doc.Nights >= 1 {
			stay.Nights = *doc.Nights
		}
		for _, g := range doc.Occupants {
			stay.Occupants = append(stay.Occupants, model.Occupant{
				UserID:    g.UserID,
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Address:   g.Address,
				Phone:     g.Phone,
				Role:      model.RoleGuest,
			})
		}
		return stay, nil

	case model.ItemKindRestaurantOrder, model.ItemKindRestaurantOrderLegacy:
		var doc orderLineDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if doc.LineID == "" {
			return nil, fmt.Errorf("order line: missing lineId")
		}
		line := model.RestaurantOrderLine{
			LineID:            doc.LineID,
			RestaurantID:      doc.RestaurantID,
			Category:          doc.Category,
			MenuItemID:        doc.MenuItemID,
			NameSnapshot:      doc.NameSnapshot,
			UnitPriceSnapshot: doc.UnitPriceSnapshot,
			Qty:               1,
			BilledRoomNumber:  doc.BilledRoomNumber,
			TakenByUsername:   doc.TakenByUsername,
			OrderedByGuestID:  doc.OrderedByGuestID,
			CreatedAt:         doc.CreatedAt,
		}
		if doc.Qty != nil && *doc.Qty >= 1 {
			line.Qty = *doc.Qty
		}
		return line, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, probe.Kind)
	}
}

func encodeBooking(b model.Booking) any {
	items := make([]json.RawMessage, 0, len(b.Items))
	for _, it := range b.Items {
		doc := encodeBookingItem(it)
		if doc == nil {
			continue
		}
		data, err := json.Marshal(doc)
		if err != nil {
			continue
		}
		items = append(items, data)
	}
	return bookingDoc{
		BookingID:      b.BookingID,
		HotelID:        b.HotelID,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		PrimaryGuestID: b.PrimaryGuestID,
		Items:          items,
	}
}

func (r *BookingRepo) decodeBooking(raw json.RawMessage) (model.Booking, error) {
	var doc bookingDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Booking{}, err
	}
	if doc.BookingID == "" {
		return model.Booking{}, fmt.Errorf("booking: %w", ErrMissingID)
	}
	b := model.Booking{
		BookingID:      doc.BookingID,
		HotelID:        doc.HotelID,
		Status:         model.ParseBookingStatus(doc.Status),
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
		PrimaryGuestID: doc.PrimaryGuestID,
	}
	for i, rawItem := range doc.Items {
		item, err := decodeBookingItem(rawItem)
		if err != nil {
			r.logger.Warn().Err(err).
				Str("bookingId", doc.BookingID).
				Int("item", i).
				Msg("skipping unreadable booking item")
			continue
		}
		b.Items = append(b.Items, item)
	}
	return b, nil
}
