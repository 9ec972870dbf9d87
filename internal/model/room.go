package model

import "strconv"

// Room represents one physical room.  Rooms are keyed by the pair
// (HotelID, Number); ID is a derived convenience key kept for
// records written by older schema versions.
//
// Fields:
//  ID        – derived key, "HotelID-Number" when absent from disk.
//  HotelID   – owning hotel.
//  Number    – room number, unique within the hotel.
//  TypeID    – references RoomType.ID (e.g. "RT-DELUXE").
//  SizeSqm   – floor area in square metres.
//  Beds      – number of sleeping places.
//  Amenities – ordered list, e.g. ["AC","TV","Sea View"].
//  Notes     – any additional information.
//  Active    – false blocks new bookings (maintenance).
type Room struct {
	ID        string
	HotelID   string
	Number    int
	TypeID    string
	SizeSqm   int
	Beds      int
	Amenities []string
	Notes     string
	Active    bool
}

// DerivedID returns the canonical room id for the compound key:
// "HotelID-Number", or "ROOM-Number" when the hotel id is empty.
func (r Room) DerivedID() string {
	if r.HotelID == "" {
		return "ROOM-" + strconv.Itoa(r.Number)
	}
	return r.HotelID + "-" + strconv.Itoa(r.Number)
}

// RoomType is a static rate catalog entry.  Types are not persisted
// as their own collection; the console carries a built-in catalog
// and bookings snapshot the rate at creation time.
type RoomType struct {
	ID          string
	Name        string
	NightlyRate int64 // minor currency units
	Active      bool
}

// RoomTypeCatalog returns the built-in room types.  Order matters:
// it is the order offered by the console menus.
func RoomTypeCatalog() []RoomType {
	return []RoomType{
		{ID: "RT-STD", Name: "Standard", NightlyRate: 450_00, Active: true},
		{ID: "RT-DELUXE", Name: "Deluxe", NightlyRate: 780_00, Active: true},
		{ID: "RT-SUITE", Name: "Suite", NightlyRate: 1450_00, Active: true},
	}
}

// FindRoomType looks up a catalog entry by id.
func FindRoomType(id string) (RoomType, bool) {
	for _, rt := range RoomTypeCatalog() {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}
