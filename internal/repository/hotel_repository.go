package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"hotel-console/internal/model"
)

// HotelRepo persists the hotels collection.  Only primary-key
// uniqueness is enforced here; manager-assignment exclusivity is a
// console-level policy.
type HotelRepo struct {
	store *Store[model.Hotel]
}

func NewHotelRepo(path string, logger zerolog.Logger) *HotelRepo {
	return &HotelRepo{store: NewStore(Config[model.Hotel]{
		Path:   path,
		Key:    func(h model.Hotel) string { return h.ID },
		Encode: encodeHotel,
		Decode: decodeHotel,
		Check:  checkHotel,
		Logger: logger.With().Str("collection", "hotels").Logger(),
	})}
}

func (r *HotelRepo) Load() error { return r.store.Load() }

func (r *HotelRepo) SaveAll() error { return r.store.SaveAll() }

func (r *HotelRepo) ResolvedPath() string { return r.store.ResolvedPath() }

// Get returns the hotel with the given id.
func (r *HotelRepo) Get(id string) (model.Hotel, bool) { return r.store.Get(id) }

// List returns all hotels in insertion order.
func (r *HotelRepo) List() []model.Hotel { return r.store.List() }

// ListManagedBy returns hotels whose manager is the given user.
func (r *HotelRepo) ListManagedBy(userID string) []model.Hotel {
	return r.store.ListWhere(func(h model.Hotel) bool { return h.ManagerUserID == userID })
}

// Upsert adds or replaces a hotel by id.
func (r *HotelRepo) Upsert(h model.Hotel) error { return r.store.Upsert(h) }

// Remove deletes a hotel by id.
func (r *HotelRepo) Remove(id string) bool { return r.store.Remove(id) }

func checkHotel(_ []model.Hotel, next model.Hotel) error {
	if next.ID == "" {
		return ErrMissingID
	}
	return nil
}

type hotelDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Stars         *int   `json:"stars,omitempty"`
	Address       string `json:"address"`
	BaseRateCents int64  `json:"baseRateCents"`
	ManagerUserID string `json:"managerUserId,omitempty"`
}

func encodeHotel(h model.Hotel) any {
	stars := h.Stars
	return hotelDoc{
		ID:            h.ID,
		Name:          h.Name,
		Stars:         &stars,
		Address:       h.Address,
		BaseRateCents: h.BaseRateCents,
		ManagerUserID: h.ManagerUserID,
	}
}

func decodeHotel(raw json.RawMessage) (model.Hotel, error) {
	var doc hotelDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Hotel{}, err
	}
	if doc.ID == "" {
		return model.Hotel{}, fmt.Errorf("hotel: %w", ErrMissingID)
	}
	h := model.Hotel{
		ID:            doc.ID,
		Name:          doc.Name,
		Stars:         3,
		Address:       doc.Address,
		BaseRateCents: doc.BaseRateCents,
		ManagerUserID: doc.ManagerUserID,
	}
	if doc.Stars != nil {
		h.Stars = *doc.Stars
	}
	if h.Stars < 1 {
		h.Stars = 1
	}
	if h.Stars > 5 {
		h.Stars = 5
	}
	return h, nil
}
