package console

import (
	"fmt"
	"time"

	"hotel-console/internal/model"
)

func (a *App) dashboardGuest() {
	for {
		banner("Guest Dashboard")
		fmt.Println("1) Book a room")
		fmt.Println("2) Order from a restaurant")
		fmt.Println("3) My bookings")
		fmt.Println("4) Cancel a booking")
		fmt.Println("5) Logout")
		switch a.io.readLine("Select: ") {
		case "1":
			a.bookRoom()
		case "2":
			a.orderFood("")
		case "3":
			a.myBookings()
		case "4":
			a.cancelBooking()
		case "5":
			a.logout()
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

// bookRoom creates a booking with one room stay.  The nightly rate
// is snapshotted from the room type (falling back to the hotel base
// rate) at this moment and never recomputed.
func (a *App) bookRoom() {
	h, ok := a.selectHotel()
	if !ok {
		return
	}

	var free []model.Room
	for _, r := range a.Rooms.ListByHotel(h.ID) {
		if r.Active && !a.roomHasActiveStay(h.ID, r.Number) {
			free = append(free, r)
		}
	}
	if len(free) == 0 {
		fmt.Println("No rooms available at this hotel right now.")
		return
	}

	banner("Available rooms at " + h.Name)
	for i, r := range free {
		fmt.Printf("%d) Room %d (%s, %d bed(s), %s/night)\n",
			i+1, r.Number, r.TypeID, r.Beds, formatMoney(a.nightlyRate(h, r)))
	}
	n := a.io.readInt("Select room: ")
	if n < 1 || n > len(free) {
		return
	}
	room := free[n-1]

	nights := a.io.readInt("Nights: ")
	if nights < 1 {
		nights = 1
	}

	now := time.Now().Unix()
	b := model.Booking{
		BookingID:      newBookingID(),
		HotelID:        h.ID,
		Status:         model.BookingActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		PrimaryGuestID: a.current.UserID,
		Items: []model.BookingItem{model.RoomStayItem{
			HotelID:           h.ID,
			RoomNumber:        room.Number,
			Nights:            nights,
			NightlyRateLocked: a.nightlyRate(h, room),
			Occupants:         []model.Occupant{model.OccupantFromUser(*a.current)},
		}},
	}
	if err := a.Bookings.Upsert(b); err != nil {
		fmt.Println("Could not save booking:", err)
		return
	}
	a.saveBookings()
	fmt.Printf("Booked room %d for %d night(s). Booking ID %s, total %s.\n",
		room.Number, nights, b.BookingID, formatMoney(b.TotalCents()))
}

func (a *App) nightlyRate(h model.Hotel, r model.Room) int64 {
	if rt, ok := model.FindRoomType(r.TypeID); ok && rt.NightlyRate > 0 {
		return rt.NightlyRate
	}
	return h.BaseRateCents
}

// orderFood appends a restaurant order line to one of the guest's
// active bookings.  takenBy is the staff login when a manager takes
// the order; empty means the guest ordered directly.
func (a *App) orderFood(takenBy string) {
	active := a.activeBookingsOf(a.current.UserID)
	if takenBy != "" {
		active = a.Bookings.ListActive()
	}
	if len(active) == 0 {
		fmt.Println("No active booking to order against.")
		return
	}
	banner("Select booking")
	for i, b := range active {
		fmt.Printf("%d) %s at %s\n", i+1, b.BookingID, b.HotelID)
	}
	n := a.io.readInt("Select: ")
	if n < 1 || n > len(active) {
		return
	}
	b := active[n-1]

	restaurants := a.Restaurants.ListByHotel(b.HotelID)
	var open []model.Restaurant
	for _, rs := range restaurants {
		if rs.Active && len(rs.ActiveMenu()) > 0 {
			open = append(open, rs)
		}
	}
	if len(open) == 0 {
		fmt.Println("No restaurants are open at this hotel.")
		return
	}
	banner("Select restaurant")
	for i, rs := range open {
		fmt.Printf("%d) %s (%s, %s)\n", i+1, rs.Name, rs.Cuisine, rs.OpenHours)
	}
	n = a.io.readInt("Select: ")
	if n < 1 || n > len(open) {
		return
	}
	rs := open[n-1]

	menu := rs.ActiveMenu()
	banner("Menu — " + rs.Name)
	for i, m := range menu {
		fmt.Printf("%d) %-28s %-12s %s\n", i+1, m.Name, m.Category, formatMoney(m.PriceCents))
	}
	n = a.io.readInt("Select item: ")
	if n < 1 || n > len(menu) {
		return
	}
	item := menu[n-1]

	qty := a.io.readInt("Quantity: ")
	if qty < 1 {
		qty = 1
	}

	billedRoom := 0
	if stayRooms := stayRoomNumbers(b); len(stayRooms) > 0 {
		if a.io.confirm(fmt.Sprintf("Bill to room %d?", stayRooms[0])) {
			billedRoom = stayRooms[0]
		}
	}

	line := model.RestaurantOrderLine{
		LineID:            nextLineID(b),
		RestaurantID:      rs.ID,
		Category:          item.Category,
		MenuItemID:        item.ID,
		NameSnapshot:      item.Name,
		UnitPriceSnapshot: item.PriceCents,
		Qty:               qty,
		BilledRoomNumber:  billedRoom,
		TakenByUsername:   takenBy,
		OrderedByGuestID:  b.PrimaryGuestID,
		CreatedAt:         time.Now().Unix(),
	}
	b.Items = append(b.Items, line)
	b.UpdatedAt = line.CreatedAt
	if err := a.Bookings.Upsert(b); err != nil {
		fmt.Println("Could not save order:", err)
		return
	}
	a.saveBookings()
	fmt.Printf("Ordered %d× %s for %s.\n", qty, item.Name, formatMoney(line.TotalCents()))
}

func (a *App) myBookings() {
	bookings := a.Bookings.ListByGuest(a.current.UserID)
	if len(bookings) == 0 {
		fmt.Println("You have no bookings yet.")
		return
	}
	a.listBookings(bookings)
}

func (a *App) cancelBooking() {
	active := a.activeBookingsOf(a.current.UserID)
	if len(active) == 0 {
		fmt.Println("You have no active bookings.")
		return
	}
	banner("Cancel booking")
	for i, b := range active {
		fmt.Printf("%d) %s at %s, total %s\n", i+1, b.BookingID, b.HotelID, formatMoney(b.TotalCents()))
	}
	n := a.io.readInt("Select: ")
	if n < 1 || n > len(active) {
		return
	}
	b := active[n-1]
	if !a.io.confirm("Cancel " + b.BookingID + "?") {
		return
	}
	b.Status = model.BookingCancelled
	b.UpdatedAt = time.Now().Unix()
	if err := a.Bookings.Upsert(b); err != nil {
		fmt.Println("Could not save booking:", err)
		return
	}
	a.saveBookings()
	fmt.Println("Booking cancelled.")
}

func (a *App) activeBookingsOf(guestID string) []model.Booking {
	var out []model.Booking
	for _, b := range a.Bookings.ListActive() {
		if b.PrimaryGuestID == guestID {
			out = append(out, b)
		}
	}
	return out
}

func stayRoomNumbers(b model.Booking) []int {
	var out []int
	for _, it := range b.Items {
		if stay, ok := it.(model.RoomStayItem); ok {
			out = append(out, stay.RoomNumber)
		}
	}
	return out
}
