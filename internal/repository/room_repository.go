package repository

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"hotel-console/internal/model"
)

// RoomRepo persists the rooms collection.  Rooms are keyed by the
// compound (hotelId, number) pair; an empty id is normalized to the
// derived "hotelId-number" form so records written by older schema
// versions stay addressable.
type RoomRepo struct {
	store *Store[model.Room]
}

func NewRoomRepo(path string, logger zerolog.Logger) *RoomRepo {
	return &RoomRepo{store: NewStore(Config[model.Room]{
		Path:   path,
		Key:    roomKey,
		Encode: encodeRoom,
		Decode: decodeRoom,
		Clone:  cloneRoom,
		Logger: logger.With().Str("collection", "rooms").Logger(),
	})}
}

func roomKey(r model.Room) string {
	return r.HotelID + "#" + strconv.Itoa(r.Number)
}

func cloneRoom(r model.Room) model.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}

func (r *RoomRepo) Load() error { return r.store.Load() }

func (r *RoomRepo) SaveAll() error { return r.store.SaveAll() }

func (r *RoomRepo) ResolvedPath() string { return r.store.ResolvedPath() }

// Get returns the room with the given hotel id and number.
func (r *RoomRepo) Get(hotelID string, number int) (model.Room, bool) {
	return r.store.Get(hotelID + "#" + strconv.Itoa(number))
}

// List returns all rooms in insertion order.
func (r *RoomRepo) List() []model.Room { return r.store.List() }

// ListByHotel returns the rooms of one hotel in insertion order.
func (r *RoomRepo) ListByHotel(hotelID string) []model.Room {
	return r.store.ListWhere(func(rm model.Room) bool { return rm.HotelID == hotelID })
}

// CountActiveByHotel counts bookable rooms of one hotel.
func (r *RoomRepo) CountActiveByHotel(hotelID string) int {
	return len(r.store.ListWhere(func(rm model.Room) bool {
		return rm.HotelID == hotelID && rm.Active
	}))
}

// Upsert adds or replaces a room under its compound key, filling in
// the derived id when the record carries none.
func (r *RoomRepo) Upsert(rm model.Room) error {
	if rm.ID == "" {
		rm.ID = rm.DerivedID()
	}
	return r.store.Upsert(rm)
}

// Remove deletes the room with the given hotel id and number.
func (r *RoomRepo) Remove(hotelID string, number int) bool {
	return r.store.Remove(hotelID + "#" + strconv.Itoa(number))
}

type roomDoc struct {
	ID        string   `json:"id,omitempty"`
	HotelID   *string  `json:"hotelId"`
	Number    *int     `json:"number"`
	TypeID    string   `json:"typeId"`
	SizeSqm   int      `json:"sizeSqm"`
	Beds      *int     `json:"beds,omitempty"`
	Amenities []string `json:"amenities"`
	Notes     string   `json:"notes,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

func encodeRoom(rm model.Room) any {
	hotelID, number, beds, active := rm.HotelID, rm.Number, rm.Beds, rm.Active
	amenities := rm.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return roomDoc{
		ID:        rm.ID,
		HotelID:   &hotelID,
		Number:    &number,
		TypeID:    rm.TypeID,
		SizeSqm:   rm.SizeSqm,
		Beds:      &beds,
		Amenities: amenities,
		Notes:     rm.Notes,
		Active:    &active,
	}
}

func decodeRoom(raw json.RawMessage) (model.Room, error) {
	var doc roomDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Room{}, err
	}
	if doc.HotelID == nil || *doc.HotelID == "" {
		return model.Room{}, errors.New("room: missing hotelId")
	}
	if doc.Number == nil || *doc.Number <= 0 {
		return model.Room{}, errors.New("room: missing number")
	}
	rm := model.Room{
		ID:        doc.ID,
		HotelID:   *doc.HotelID,
		Number:    *doc.Number,
		TypeID:    doc.TypeID,
		SizeSqm:   doc.SizeSqm,
		Beds:      1,
		Amenities: doc.Amenities,
		Notes:     doc.Notes,
		Active:    true,
	}
	if doc.Beds != nil {
		rm.Beds = *doc.Beds
	}
	if doc.Active != nil {
		rm.Active = *doc.Active
	}
	if rm.ID == "" {
		rm.ID = rm.DerivedID()
	}
	return rm, nil
}
