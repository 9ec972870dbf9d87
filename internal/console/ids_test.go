package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-console/internal/model"
)

func TestNextHotelID_SkipsGapsFromRemovals(t *testing.T) {
	require.Equal(t, "HTL-0001", nextHotelID(nil))

	hotels := []model.Hotel{{ID: "HTL-0001"}, {ID: "HTL-0005"}}
	require.Equal(t, "HTL-0006", nextHotelID(hotels))
}

func TestNextMenuItemID_ScopedToRestaurant(t *testing.T) {
	rs := model.Restaurant{
		ID: "RST-0002",
		Menu: []model.MenuItem{
			{ID: "RST-0002-M001"},
			{ID: "RST-0002-M007"},
			{ID: "unrelated"},
		},
	}
	require.Equal(t, "RST-0002-M008", nextMenuItemID(rs))
}

func TestNextLineID_CountsOnlyOrderLines(t *testing.T) {
	b := model.Booking{Items: []model.BookingItem{
		model.RoomStayItem{RoomNumber: 101},
		model.RestaurantOrderLine{LineID: "ROL-0003"},
	}}
	require.Equal(t, "ROL-0004", nextLineID(b))
	require.Equal(t, "ROL-0001", nextLineID(model.Booking{}))
}

func TestRandomIDs_HaveStablePrefixAndLength(t *testing.T) {
	bid := newBookingID()
	require.True(t, strings.HasPrefix(bid, "BKG-"))
	require.Len(t, bid, len("BKG-")+8)
	require.NotEqual(t, newBookingID(), newBookingID())

	uid := newUserID()
	require.True(t, strings.HasPrefix(uid, "USR-"))
	require.Len(t, uid, len("USR-")+12)
}
