package model

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingActive     BookingStatus = "ACTIVE"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// ParseBookingStatus maps a stored status string to a
// BookingStatus, defaulting to BookingActive.
func ParseBookingStatus(s string) BookingStatus {
	switch s {
	case string(BookingCheckedOut):
		return BookingCheckedOut
	case string(BookingCancelled):
		return BookingCancelled
	default:
		return BookingActive
	}
}

// Discriminant tags written to disk for the two BookingItem
// variants.  ItemKindRestaurantOrderLegacy is the tag the previous
// generation of the tool wrote; it is accepted on decode only.
const (
	ItemKindRoomStay              = "RoomStayItem"
	ItemKindRestaurantOrder       = "RestaurantOrder"
	ItemKindRestaurantOrderLegacy = "RestaurantOrderLine"
)

// BookingItem is a closed sum over the two line-item variants a
// booking can carry: a room stay or a restaurant order line.
// ItemKind returns the discriminant tag used on disk.
type BookingItem interface {
	ItemKind() string
}

// Occupant is a sanitized guest identity carried inside a room
// stay.  It deliberately has no login, password or stored role;
// decoded occupants always get RoleGuest.
type Occupant struct {
	UserID    string
	FirstName string
	LastName  string
	Address   string
	Phone     string
	Role      Role
}

// OccupantFromUser strips credentials and role from a user record,
// keeping only the identity fields a booking needs.
func OccupantFromUser(u User) Occupant {
	return Occupant{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Phone:     u.Phone,
		Role:      RoleGuest,
	}
}

// RoomStayItem is a stay in one room.  NightlyRateLocked is a
// snapshot taken at booking time and is never recomputed from the
// live room or rate catalog.
type RoomStayItem struct {
	HotelID           string
	RoomNumber        int
	Nights            int
	NightlyRateLocked int64
	Occupants         []Occupant
}

func (RoomStayItem) ItemKind() string { return ItemKindRoomStay }

// TotalCents is the stay subtotal (nights × locked rate).
func (s RoomStayItem) TotalCents() int64 {
	return int64(s.Nights) * s.NightlyRateLocked
}

// RestaurantOrderLine is one menu item ordered on a booking.  Name
// and unit price are snapshots from the menu at order time.
//
// Fields:
//  LineID            – unique within the booking, e.g. "ROL-0001".
//  RestaurantID      – which restaurant fulfilled the order.
//  Category          – snapshot of MenuItem.Category.
//  MenuItemID        – MenuItem.ID.
//  NameSnapshot      – MenuItem.Name at order time.
//  UnitPriceSnapshot – MenuItem.PriceCents at order time.
//  Qty               – ordered quantity, at least 1.
//  BilledRoomNumber  – room in this booking the line is billed to
//                      (0 = unbilled).
//  TakenByUsername   – staff login that took the order.
//  OrderedByGuestID  – occupant who ordered ("" if not recorded).
//  CreatedAt         – epoch seconds.
type RestaurantOrderLine struct {
	LineID            string
	RestaurantID      string
	Category          string
	MenuItemID        string
	NameSnapshot      string
	UnitPriceSnapshot int64
	Qty               int
	BilledRoomNumber  int
	TakenByUsername   string
	OrderedByGuestID  string
	CreatedAt         int64
}

func (RestaurantOrderLine) ItemKind() string { return ItemKindRestaurantOrder }

// TotalCents is the line subtotal (qty × locked unit price).
func (l RestaurantOrderLine) TotalCents() int64 {
	return int64(l.Qty) * l.UnitPriceSnapshot
}

// Booking aggregates room stays and restaurant orders for one
// guest at one hotel.  Items preserve insertion order.
type Booking struct {
	BookingID      string
	HotelID        string
	Status         BookingStatus
	CreatedAt      int64
	UpdatedAt      int64
	PrimaryGuestID string
	Items          []BookingItem
}

// TotalCents sums every line item of the booking.
func (b Booking) TotalCents() int64 {
	var total int64
	for _, it := range b.Items {
		switch v := it.(type) {
		case RoomStayItem:
			total += v.TotalCents()
		case RestaurantOrderLine:
			total += v.TotalCents()
		}
	}
	return total
}

// StayFor returns the first room stay for the given room number,
// used when billing an order line to a room in the same booking.
func (b Booking) StayFor(roomNumber int) (RoomStayItem, bool) {
	for _, it := range b.Items {
		if s, ok := it.(RoomStayItem); ok && s.RoomNumber == roomNumber {
			return s, true
		}
	}
	return RoomStayItem{}, false
}
