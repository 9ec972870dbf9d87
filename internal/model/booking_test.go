package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-console/internal/model"
)

func TestBooking_TotalCentsSumsAllItems(t *testing.T) {
	b := model.Booking{
		BookingID: "B1",
		Items: []model.BookingItem{
			model.RoomStayItem{RoomNumber: 101, Nights: 2, NightlyRateLocked: 10000},
			model.RestaurantOrderLine{LineID: "ROL-1", Qty: 3, UnitPriceSnapshot: 500},
		},
	}
	require.Equal(t, int64(2*10000+3*500), b.TotalCents())
	require.Equal(t, int64(0), model.Booking{}.TotalCents())
}

func TestBooking_StayForMatchesRoomNumber(t *testing.T) {
	b := model.Booking{
		Items: []model.BookingItem{
			model.RestaurantOrderLine{LineID: "ROL-1"},
			model.RoomStayItem{RoomNumber: 101, Nights: 1},
			model.RoomStayItem{RoomNumber: 102, Nights: 2},
		},
	}
	stay, ok := b.StayFor(102)
	require.True(t, ok)
	require.Equal(t, 2, stay.Nights)
	_, ok = b.StayFor(999)
	require.False(t, ok)
}

func TestOccupantFromUser_StripsCredentials(t *testing.T) {
	u := model.User{
		UserID:       "U1",
		FirstName:    "Ada",
		LastName:     "Quinn",
		Login:        "ada",
		Password:     "cleartext",
		PasswordHash: "$2a$hash",
		Role:         model.RoleAdmin,
	}
	occ := model.OccupantFromUser(u)
	require.Equal(t, "U1", occ.UserID)
	require.Equal(t, "Ada", occ.FirstName)
	require.Equal(t, model.RoleGuest, occ.Role)
}

func TestParseBookingStatus_DefaultsToActive(t *testing.T) {
	require.Equal(t, model.BookingCheckedOut, model.ParseBookingStatus("CHECKED_OUT"))
	require.Equal(t, model.BookingCancelled, model.ParseBookingStatus("CANCELLED"))
	require.Equal(t, model.BookingActive, model.ParseBookingStatus(""))
	require.Equal(t, model.BookingActive, model.ParseBookingStatus("garbage"))
}
