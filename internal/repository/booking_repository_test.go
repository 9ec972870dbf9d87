package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hotel-console/internal/model"
	"hotel-console/internal/repository"
)

func newBookingRepo(t *testing.T) (*repository.BookingRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.json")
	r := repository.NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())
	return r, path
}

func sampleBooking() model.Booking {
	return model.Booking{
		BookingID:      "BKG-TEST01",
		HotelID:        "H1",
		Status:         model.BookingActive,
		CreatedAt:      1700000000,
		UpdatedAt:      1700000100,
		PrimaryGuestID: "USR-1",
		Items: []model.BookingItem{
			model.RoomStayItem{
				HotelID:           "H1",
				RoomNumber:        101,
				Nights:            3,
				NightlyRateLocked: 12900,
				Occupants: []model.Occupant{
					{UserID: "USR-1", FirstName: "Ada", LastName: "Quinn", Role: model.RoleGuest},
				},
			},
			model.RestaurantOrderLine{
				LineID:            "ROL-0001",
				RestaurantID:      "RST-0001",
				Category:          "Dinner",
				MenuItemID:        "RST-0001-M001",
				NameSnapshot:      "Chowder",
				UnitPriceSnapshot: 1450,
				Qty:               2,
				BilledRoomNumber:  101,
				TakenByUsername:   "ada",
				OrderedByGuestID:  "USR-1",
				CreatedAt:         1700000050,
			},
		},
	}
}

func TestBookingRepo_RoundTripPreservesVariantsAndOrder(t *testing.T) {
	r, _ := newBookingRepo(t)
	b := sampleBooking()
	require.NoError(t, r.Upsert(b))
	require.NoError(t, r.SaveAll())

	require.NoError(t, r.Load())
	got, ok := r.Get("BKG-TEST01")
	require.True(t, ok)
	require.Equal(t, b, got)

	stay, ok := got.Items[0].(model.RoomStayItem)
	require.True(t, ok)
	require.Equal(t, int64(3*12900), stay.TotalCents())
	line, ok := got.Items[1].(model.RestaurantOrderLine)
	require.True(t, ok)
	require.Equal(t, int64(2*1450), line.TotalCents())
}

func TestBookingRepo_WritesCurrentOrderTag(t *testing.T) {
	r, path := newBookingRepo(t)
	require.NoError(t, r.Upsert(sampleBooking()))
	require.NoError(t, r.SaveAll())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"RestaurantOrder"`)
	require.NotContains(t, string(data), `"RestaurantOrderLine"`)
}

func TestBookingRepo_AcceptsLegacyOrderTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	raw := `[{"bookingId":"B1","hotelId":"H1","items":[
	  {"kind":"RestaurantOrderLine","lineId":"ROL-0001","unitPriceSnapshot":500,"qty":2}
	]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())

	b, ok := r.Get("B1")
	require.True(t, ok)
	require.Len(t, b.Items, 1)
	line, ok := b.Items[0].(model.RestaurantOrderLine)
	require.True(t, ok)
	require.Equal(t, "ROL-0001", line.LineID)
	require.Equal(t, 2, line.Qty)
}

func TestBookingRepo_DropsUnknownItemKindsButKeepsTheRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	raw := `[{"bookingId":"B1","hotelId":"H1","items":[
	  {"kind":"SpaTreatment","price":9999},
	  {"kind":"RoomStayItem","hotelId":"H1","roomNumber":101,"nightlyRateLocked":10000}
	]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())

	b, ok := r.Get("B1")
	require.True(t, ok)
	require.Len(t, b.Items, 1)
	_, ok = b.Items[0].(model.RoomStayItem)
	require.True(t, ok)
}

func TestBookingRepo_ItemDefaultsAndStrictFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	raw := `[{"bookingId":"B1","items":[
	  {"kind":"RoomStayItem","hotelId":"H1","roomNumber":101,"nightlyRateLocked":5000},
	  {"kind":"RoomStayItem","roomNumber":102},
	  {"kind":"RestaurantOrder","lineId":"ROL-0001","unitPriceSnapshot":700},
	  {"kind":"RestaurantOrder","unitPriceSnapshot":700}
	]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())

	b, ok := r.Get("B1")
	require.True(t, ok)
	require.Len(t, b.Items, 2)

	stay := b.Items[0].(model.RoomStayItem)
	require.Equal(t, 1, stay.Nights)
	line := b.Items[1].(model.RestaurantOrderLine)
	require.Equal(t, 1, line.Qty)
}

func TestBookingRepo_SkipsBookingsWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	raw := `[{"hotelId":"H1","items":[]},{"bookingId":"B2","hotelId":"H1","items":[]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewBookingRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())
	require.Len(t, r.List(), 1)
}

func TestBookingRepo_RejectsEmptyIDOnUpsert(t *testing.T) {
	r, _ := newBookingRepo(t)
	require.ErrorIs(t, r.Upsert(model.Booking{HotelID: "H1"}), repository.ErrMissingID)
}

func TestBookingRepo_ListFilters(t *testing.T) {
	r, _ := newBookingRepo(t)
	require.NoError(t, r.Upsert(model.Booking{BookingID: "B1", HotelID: "H1", Status: model.BookingActive, PrimaryGuestID: "U1"}))
	require.NoError(t, r.Upsert(model.Booking{BookingID: "B2", HotelID: "H2", Status: model.BookingCheckedOut, PrimaryGuestID: "U1"}))
	require.NoError(t, r.Upsert(model.Booking{BookingID: "B3", HotelID: "H1", Status: model.BookingCancelled, PrimaryGuestID: "U2"}))

	active := r.ListActive()
	require.Len(t, active, 1)
	require.Equal(t, "B1", active[0].BookingID)

	require.Len(t, r.ListByHotel("H1"), 2)
	require.Len(t, r.ListByGuest("U1"), 2)
	require.Empty(t, r.ListByGuest("U9"))
}

func TestBookingRepo_OccupantsDoNotAliasInternalState(t *testing.T) {
	r, _ := newBookingRepo(t)
	require.NoError(t, r.Upsert(sampleBooking()))

	got, _ := r.Get("BKG-TEST01")
	stay := got.Items[0].(model.RoomStayItem)
	stay.Occupants[0].FirstName = "Mutated"

	again, _ := r.Get("BKG-TEST01")
	require.Equal(t, "Ada", again.Items[0].(model.RoomStayItem).Occupants[0].FirstName)
}
