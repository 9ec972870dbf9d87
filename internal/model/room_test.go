package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-console/internal/model"
)

func TestRoom_DerivedID(t *testing.T) {
	require.Equal(t, "H1-101", model.Room{HotelID: "H1", Number: 101}.DerivedID())
	require.Equal(t, "ROOM-205", model.Room{Number: 205}.DerivedID())
}

func TestFindRoomType(t *testing.T) {
	rt, ok := model.FindRoomType("RT-DELUXE")
	require.True(t, ok)
	require.Equal(t, "RT-DELUXE", rt.ID)
	require.Positive(t, rt.NightlyRate)

	_, ok = model.FindRoomType("RT-NOPE")
	require.False(t, ok)
}

func TestParseRole_DefaultsToGuest(t *testing.T) {
	require.Equal(t, model.RoleAdmin, model.ParseRole("ADMIN"))
	require.Equal(t, model.RoleHotelManager, model.ParseRole("HOTEL_MANAGER"))
	require.Equal(t, model.RoleGuest, model.ParseRole(""))
	require.Equal(t, model.RoleGuest, model.ParseRole("OVERLORD"))
}

func TestRestaurant_ActiveMenu(t *testing.T) {
	rs := model.Restaurant{Menu: []model.MenuItem{
		{ID: "M1", Active: true},
		{ID: "M2", Active: false},
		{ID: "M3", Active: true},
	}}
	active := rs.ActiveMenu()
	require.Len(t, active, 2)
	require.Equal(t, "M1", active[0].ID)
	require.Equal(t, "M3", active[1].ID)
}
