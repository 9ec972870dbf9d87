package console

import (
	"fmt"
	"time"

	"hotel-console/internal/model"
)

func (a *App) dashboardManager() {
	hotels := a.Hotels.ListManagedBy(a.current.UserID)
	if len(hotels) == 0 {
		banner("Manager dashboard")
		fmt.Println("No hotel is assigned to you yet. Ask an admin.")
		a.io.pause()
		a.logout()
		return
	}
	h := hotels[0]
	for {
		banner("Manager • " + h.Name)
		fmt.Println("1) Hotel snapshot")
		fmt.Println("2) Manage rooms")
		fmt.Println("3) Manage restaurants")
		fmt.Println("4) Take restaurant order")
		fmt.Println("5) Check out a booking")
		fmt.Println("6) Logout")
		switch a.io.readLine("Select: ") {
		case "1":
			a.hotelSnapshot(h)
		case "2":
			a.roomMenu(h)
		case "3":
			a.restaurantMenuFor(h)
		case "4":
			a.orderFood(a.current.Login)
		case "5":
			a.checkOutBooking(h)
		case "6":
			a.logout()
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) hotelSnapshot(h model.Hotel) {
	banner("Hotel snapshot")
	rooms := a.Rooms.ListByHotel(h.ID)
	active := a.Rooms.CountActiveByHotel(h.ID)
	occupied := 0
	for _, r := range rooms {
		if a.roomHasActiveStay(h.ID, r.Number) {
			occupied++
		}
	}
	fmt.Printf("%s (%s), %d star(s)\n", h.Name, h.ID, h.Stars)
	fmt.Printf("Rooms: %d total, %d bookable, %d occupied\n", len(rooms), active, occupied)
	fmt.Printf("Restaurants open: %d\n", a.Restaurants.CountActiveByHotel(h.ID))
	var revenue int64
	for _, b := range a.Bookings.ListByHotel(h.ID) {
		if b.Status != model.BookingCancelled {
			revenue += b.TotalCents()
		}
	}
	fmt.Println("Revenue to date:", formatMoney(revenue))
	a.io.pause()
}

func (a *App) checkOutBooking(h model.Hotel) {
	var active []model.Booking
	for _, b := range a.Bookings.ListActive() {
		if b.HotelID == h.ID {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		fmt.Println("No active bookings at this hotel.")
		return
	}
	banner("Check out")
	for i, b := range active {
		fmt.Printf("%d) %s guest %s, total %s\n",
			i+1, b.BookingID, b.PrimaryGuestID, formatMoney(b.TotalCents()))
	}
	n := a.io.readInt("Select: ")
	if n < 1 || n > len(active) {
		return
	}
	b := active[n-1]
	fmt.Printf("Final bill for %s: %s\n", b.BookingID, formatMoney(b.TotalCents()))
	if !a.io.confirm("Confirm check-out?") {
		return
	}
	b.Status = model.BookingCheckedOut
	b.UpdatedAt = time.Now().Unix()
	if err := a.Bookings.Upsert(b); err != nil {
		fmt.Println("Could not save booking:", err)
		return
	}
	a.saveBookings()
	fmt.Println("Checked out.")
}
