package console

import (
	"fmt"
	"strings"
	"time"

	"hotel-console/internal/model"
)

func (a *App) dashboardAdmin() {
	for {
		banner("Admin dashboard")
		fmt.Println("1) Manage hotels")
		fmt.Println("2) Manage rooms")
		fmt.Println("3) Manage restaurants")
		fmt.Println("4) Booking oversight")
		fmt.Println("5) User management")
		fmt.Println("6) Operations snapshot")
		fmt.Println("7) Load sample data")
		fmt.Println("8) Logout")
		fmt.Println("0) Exit application")
		switch a.io.readLine("Select: ") {
		case "1":
			a.hotelMenu()
		case "2":
			if h, ok := a.selectHotel(); ok {
				a.roomMenu(h)
			}
		case "3":
			a.restaurantMenu()
		case "4":
			a.bookingOversight()
		case "5":
			a.userMenu()
		case "6":
			a.operationsSnapshot()
		case "7":
			a.loadSampleData()
		case "8":
			a.logout()
			return
		case "0":
			a.logout()
			a.running = false
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

// selectHotel lists hotels and lets the admin pick one.
func (a *App) selectHotel() (model.Hotel, bool) {
	hotels := a.Hotels.List()
	if len(hotels) == 0 {
		fmt.Println("No hotels found. Create one first.")
		return model.Hotel{}, false
	}
	banner("Select hotel")
	for i, h := range hotels {
		fmt.Printf("%d) %s (%s)\n", i+1, h.Name, h.ID)
	}
	fmt.Println("0) Back")
	n := a.io.readInt("Select: ")
	if n <= 0 || n > len(hotels) {
		return model.Hotel{}, false
	}
	return hotels[n-1], true
}

// ---- hotels ----

func (a *App) hotelMenu() {
	for {
		banner("Hotel management")
		fmt.Println("1) List hotels")
		fmt.Println("2) Add hotel")
		fmt.Println("3) Edit hotel")
		fmt.Println("4) Remove hotel")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listHotels()
		case "2":
			a.addHotel()
		case "3":
			a.editHotel()
		case "4":
			a.removeHotel()
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listHotels() {
	banner("Hotels")
	hotels := a.Hotels.List()
	if len(hotels) == 0 {
		fmt.Println("No hotels found.")
		return
	}
	fmt.Printf("%-10s %-26s %-6s %-7s %-12s %-20s %s\n",
		"ID", "Name", "Stars", "Rooms", "Base rate", "Manager", "Address")
	for _, h := range hotels {
		manager := "-"
		if u, ok := a.Users.GetByID(h.ManagerUserID); ok {
			manager = u.Login
		}
		rooms := fmt.Sprintf("%d/%d",
			a.Rooms.CountActiveByHotel(h.ID), len(a.Rooms.ListByHotel(h.ID)))
		fmt.Printf("%-10s %-26s %-6d %-7s %-12s %-20s %s\n",
			h.ID, h.Name, h.Stars, rooms, formatMoney(h.BaseRateCents), manager, h.Address)
	}
	a.io.pause()
}

func (a *App) addHotel() {
	banner("Create hotel")
	h := model.Hotel{ID: nextHotelID(a.Hotels.List())}
	h.Name = a.io.readLine("Name: ")
	for {
		h.Stars = a.io.readInt("Stars (1-5): ")
		if h.Stars >= 1 && h.Stars <= 5 {
			break
		}
		fmt.Println("Please enter a value between 1 and 5.")
	}
	h.Address = a.io.readLine("Address: ")
	h.BaseRateCents = a.io.readMoney("Base nightly rate: ")
	if err := a.Hotels.Upsert(h); err != nil {
		fmt.Println("Could not save hotel:", err)
		return
	}
	a.saveHotels()
	fmt.Printf("Hotel created with ID %s\n", h.ID)
}

func (a *App) editHotel() {
	banner("Edit hotel")
	h, ok := a.Hotels.Get(a.io.readLine("Hotel ID: "))
	if !ok {
		fmt.Println("Hotel not found.")
		return
	}
	fmt.Printf("Editing %s (%s) — leave blank to keep.\n", h.Name, h.ID)
	if v := a.io.readOptional(fmt.Sprintf("Name [%s]: ", h.Name)); v != "" {
		h.Name = v
	}
	if v := a.io.readOptional(fmt.Sprintf("Stars [%d]: ", h.Stars)); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n >= 1 && n <= 5 {
			h.Stars = n
		} else {
			fmt.Println("Invalid star value. Keeping previous setting.")
		}
	}
	if v := a.io.readOptional(fmt.Sprintf("Address [%s]: ", h.Address)); v != "" {
		h.Address = v
	}
	if v := a.io.readOptional(fmt.Sprintf("Base rate [%s]: ", formatMoney(h.BaseRateCents))); v != "" {
		if cents, ok := parseMoney(v); ok {
			h.BaseRateCents = cents
		} else {
			fmt.Println("Enter an amount such as 850 or 849.99.")
		}
	}
	if err := a.Hotels.Upsert(h); err != nil {
		fmt.Println("Could not save hotel:", err)
		return
	}
	a.saveHotels()
	fmt.Println("Hotel updated.")
}

// removeHotel refuses while rooms, restaurants or bookings still
// reference the hotel.  The store does not cascade; the checks live
// here on purpose.
func (a *App) removeHotel() {
	banner("Remove hotel")
	h, ok := a.Hotels.Get(a.io.readLine("Hotel ID: "))
	if !ok {
		fmt.Println("Hotel not found.")
		return
	}
	if n := len(a.Rooms.ListByHotel(h.ID)); n > 0 {
		fmt.Printf("This hotel still has %d rooms. Remove rooms first.\n", n)
		return
	}
	if n := len(a.Restaurants.ListByHotel(h.ID)); n > 0 {
		fmt.Printf("This hotel still has %d restaurant(s). Remove or reassign them first.\n", n)
		return
	}
	if len(a.Bookings.ListByHotel(h.ID)) > 0 {
		fmt.Println("Bookings exist for this hotel. Deactivate instead of removing.")
		return
	}
	if !a.io.confirm(fmt.Sprintf("Remove %s (%s)?", h.Name, h.ID)) {
		fmt.Println("Cancellation confirmed.")
		return
	}
	a.Hotels.Remove(h.ID)
	a.saveHotels()
	fmt.Println("Hotel removed.")
}

// ---- rooms ----

func (a *App) roomMenu(h model.Hotel) {
	for {
		banner("Rooms • " + h.Name)
		fmt.Println("1) List rooms")
		fmt.Println("2) Add room")
		fmt.Println("3) Edit room")
		fmt.Println("4) Toggle availability")
		fmt.Println("5) Remove room")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listRooms(h)
		case "2":
			a.addRoom(h)
		case "3":
			a.editRoom(h)
		case "4":
			a.toggleRoom(h)
		case "5":
			a.removeRoom(h)
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listRooms(h model.Hotel) {
	banner("Rooms for " + h.Name)
	rooms := a.Rooms.ListByHotel(h.ID)
	if len(rooms) == 0 {
		fmt.Println("No rooms configured for this hotel yet.")
		return
	}
	fmt.Printf("%-8s %-10s %-6s %-8s %-8s %s\n", "Room", "Type", "Beds", "Size", "Active", "Amenities")
	for _, r := range rooms {
		fmt.Printf("%-8d %-10s %-6d %-8d %-8s %v\n",
			r.Number, r.TypeID, r.Beds, r.SizeSqm, yesNo(r.Active), r.Amenities)
		if r.Notes != "" {
			fmt.Println("    Notes:", r.Notes)
		}
	}
	a.io.pause()
}

func (a *App) addRoom(h model.Hotel) {
	banner("Add room to " + h.Name)
	var number int
	for {
		number = a.io.readInt("Room number: ")
		if number <= 0 {
			fmt.Println("Enter a positive integer.")
			continue
		}
		if _, exists := a.Rooms.Get(h.ID, number); exists {
			fmt.Println("Room already exists. Choose another number.")
			continue
		}
		break
	}

	types := model.RoomTypeCatalog()
	fmt.Println("Room types:")
	for i, rt := range types {
		fmt.Printf("%d) %s (%s, %s/night)\n", i+1, rt.Name, rt.ID, formatMoney(rt.NightlyRate))
	}
	typeID := types[0].ID
	if n := a.io.readInt("Type: "); n >= 1 && n <= len(types) {
		typeID = types[n-1].ID
	}

	r := model.Room{
		HotelID: h.ID,
		Number:  number,
		TypeID:  typeID,
		Beds:    clamp(a.io.readInt("Beds (1-6): "), 1, 6),
		SizeSqm: a.io.readInt("Size (sqm): "),
		Active:  true,
	}
	r.Amenities = splitCSV(a.io.readOptional("Amenities (comma separated): "))
	r.Notes = a.io.readOptional("Notes (optional): ")

	if err := a.Rooms.Upsert(r); err != nil {
		fmt.Println("Could not save room:", err)
		return
	}
	a.saveRooms()
	fmt.Printf("Room %d created.\n", number)
}

func (a *App) editRoom(h model.Hotel) {
	banner("Edit room - " + h.Name)
	r, ok := a.Rooms.Get(h.ID, a.io.readInt("Room number: "))
	if !ok {
		fmt.Println("Room not found.")
		return
	}
	fmt.Printf("Updating room %d — leave blank to keep.\n", r.Number)
	if v := a.io.readOptional(fmt.Sprintf("Beds [%d]: ", r.Beds)); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			r.Beds = clamp(n, 1, 6)
		} else {
			fmt.Println("Invalid beds value. Keeping previous setting.")
		}
	}
	if v := a.io.readOptional(fmt.Sprintf("Size [%d]: ", r.SizeSqm)); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			r.SizeSqm = n
		} else {
			fmt.Println("Invalid size. Keeping previous setting.")
		}
	}
	if v := a.io.readOptional("Amenities (comma separated, blank keeps): "); v != "" {
		r.Amenities = splitCSV(v)
	}
	if v := a.io.readOptional(fmt.Sprintf("Notes [%s]: ", r.Notes)); v != "" {
		r.Notes = v
	}
	if err := a.Rooms.Upsert(r); err != nil {
		fmt.Println("Could not save room:", err)
		return
	}
	a.saveRooms()
	fmt.Println("Room updated.")
}

func (a *App) toggleRoom(h model.Hotel) {
	banner("Toggle room availability")
	r, ok := a.Rooms.Get(h.ID, a.io.readInt("Room number: "))
	if !ok {
		fmt.Println("Room not found.")
		return
	}
	r.Active = !r.Active
	if err := a.Rooms.Upsert(r); err != nil {
		fmt.Println("Could not save room:", err)
		return
	}
	a.saveRooms()
	if r.Active {
		fmt.Printf("Room %d activated.\n", r.Number)
	} else {
		fmt.Printf("Room %d deactivated.\n", r.Number)
	}
}

// removeRoom refuses while an active booking still has a stay on
// the room.
func (a *App) removeRoom(h model.Hotel) {
	banner("Remove room")
	number := a.io.readInt("Room number: ")
	if _, ok := a.Rooms.Get(h.ID, number); !ok {
		fmt.Println("Room not found.")
		return
	}
	if a.roomHasActiveStay(h.ID, number) {
		fmt.Println("An active booking references this room. Check it out or cancel it first.")
		return
	}
	a.Rooms.Remove(h.ID, number)
	a.saveRooms()
	fmt.Println("Room removed.")
}

func (a *App) roomHasActiveStay(hotelID string, number int) bool {
	for _, b := range a.Bookings.ListActive() {
		if b.HotelID != hotelID {
			continue
		}
		if _, ok := b.StayFor(number); ok {
			return true
		}
	}
	return false
}

// ---- bookings ----

func (a *App) bookingOversight() {
	for {
		banner("Booking oversight")
		fmt.Println("1) List bookings")
		fmt.Println("2) View booking details")
		fmt.Println("3) Update booking status")
		fmt.Println("4) Remove cancelled booking")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listBookings(a.Bookings.List())
		case "2":
			a.bookingDetails()
		case "3":
			a.updateBookingStatus()
		case "4":
			a.removeCancelledBooking()
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listBookings(bookings []model.Booking) {
	banner("Bookings")
	if len(bookings) == 0 {
		fmt.Println("No bookings recorded.")
		return
	}
	fmt.Printf("%-14s %-10s %-12s %-8s %-8s %s\n",
		"Booking", "Hotel", "Status", "Stays", "Orders", "Total")
	for _, b := range bookings {
		var stays, orders int
		for _, it := range b.Items {
			switch it.(type) {
			case model.RoomStayItem:
				stays++
			case model.RestaurantOrderLine:
				orders++
			}
		}
		fmt.Printf("%-14s %-10s %-12s %-8d %-8d %s\n",
			b.BookingID, b.HotelID, b.Status, stays, orders, formatMoney(b.TotalCents()))
	}
	a.io.pause()
}

func (a *App) bookingDetails() {
	banner("Booking details")
	b, ok := a.Bookings.Get(a.io.readLine("Booking ID: "))
	if !ok {
		fmt.Println("Booking not found.")
		return
	}
	fmt.Printf("%s at %s — %s\n", b.BookingID, b.HotelID, b.Status)
	fmt.Printf("Guest: %s  Created: %s\n", b.PrimaryGuestID,
		time.Unix(b.CreatedAt, 0).Format("2006-01-02 15:04"))
	for i, it := range b.Items {
		switch v := it.(type) {
		case model.RoomStayItem:
			fmt.Printf("%d) Room %d, %d night(s) @ %s = %s, %d occupant(s)\n",
				i+1, v.RoomNumber, v.Nights, formatMoney(v.NightlyRateLocked),
				formatMoney(v.TotalCents()), len(v.Occupants))
		case model.RestaurantOrderLine:
			billed := "unbilled"
			if v.BilledRoomNumber != 0 {
				billed = fmt.Sprintf("room %d", v.BilledRoomNumber)
			}
			fmt.Printf("%d) %s ×%d @ %s = %s (%s, %s)\n",
				i+1, v.NameSnapshot, v.Qty, formatMoney(v.UnitPriceSnapshot),
				formatMoney(v.TotalCents()), v.Category, billed)
		}
	}
	fmt.Println("Total:", formatMoney(b.TotalCents()))
	a.io.pause()
}

func (a *App) updateBookingStatus() {
	banner("Update booking status")
	b, ok := a.Bookings.Get(a.io.readLine("Booking ID: "))
	if !ok {
		fmt.Println("Booking not found.")
		return
	}
	fmt.Println("1) Mark ACTIVE")
	fmt.Println("2) Mark CHECKED_OUT")
	fmt.Println("3) Mark CANCELLED")
	fmt.Println("0) Back")
	switch a.io.readLine("Select: ") {
	case "1":
		b.Status = model.BookingActive
	case "2":
		b.Status = model.BookingCheckedOut
	case "3":
		b.Status = model.BookingCancelled
	default:
		return
	}
	b.UpdatedAt = time.Now().Unix()
	if err := a.Bookings.Upsert(b); err != nil {
		fmt.Println("Could not save booking:", err)
		return
	}
	a.saveBookings()
	fmt.Println("Status updated.")
}

func (a *App) removeCancelledBooking() {
	banner("Remove booking record")
	b, ok := a.Bookings.Get(a.io.readLine("Booking ID: "))
	if !ok {
		fmt.Println("Booking not found.")
		return
	}
	if b.Status != model.BookingCancelled {
		fmt.Println("Only cancelled bookings can be removed.")
		return
	}
	a.Bookings.Remove(b.BookingID)
	a.saveBookings()
	fmt.Println("Booking removed.")
}

// ---- users ----

func (a *App) userMenu() {
	for {
		banner("User management")
		fmt.Println("1) List users")
		fmt.Println("2) Promote to hotel manager")
		fmt.Println("3) Assign manager to hotel")
		fmt.Println("4) Toggle account active")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listUsers()
		case "2":
			a.promoteUser()
		case "3":
			a.assignManager()
		case "4":
			a.toggleUser()
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listUsers() {
	banner("Users")
	fmt.Printf("%-18s %-16s %-14s %-8s %s\n", "ID", "Login", "Role", "Active", "Name")
	for _, u := range a.Users.List() {
		fmt.Printf("%-18s %-16s %-14s %-8s %s\n",
			u.UserID, u.Login, u.Role, yesNo(u.Active), u.FullName())
	}
	a.io.pause()
}

func (a *App) promoteUser() {
	login := a.io.readLine("Login to promote: ")
	u, ok := a.Users.GetByLogin(login)
	if !ok {
		fmt.Printf("No user found with login '%s'.\n", login)
		return
	}
	if u.Role != model.RoleGuest {
		fmt.Printf("User is currently %s.\n", u.Role)
		if !a.io.confirm("Convert to HOTEL_MANAGER anyway?") {
			fmt.Println("Conversion cancelled.")
			return
		}
	}
	u.Role = model.RoleHotelManager
	if err := a.Users.Upsert(u); err != nil {
		fmt.Println("Failed to update user role:", err)
		return
	}
	a.saveUsers()
	fmt.Println("User promoted to HOTEL_MANAGER.")
}

// assignManager enforces the one-hotel-per-manager rule here, not
// in the store.
func (a *App) assignManager() {
	h, ok := a.selectHotel()
	if !ok {
		return
	}
	u, found := a.Users.GetByLogin(a.io.readLine("Manager login: "))
	if !found || u.Role != model.RoleHotelManager {
		fmt.Println("No hotel manager with that login.")
		return
	}
	for _, other := range a.Hotels.ListManagedBy(u.UserID) {
		if other.ID == h.ID {
			continue
		}
		fmt.Printf("Warning: this manager currently oversees %s (%s).\n", other.Name, other.ID)
		if !a.io.confirm("Reassign?") {
			fmt.Println("Assignment cancelled.")
			return
		}
		other.ManagerUserID = ""
		if err := a.Hotels.Upsert(other); err != nil {
			fmt.Println("Could not update hotel:", err)
			return
		}
	}
	h.ManagerUserID = u.UserID
	if err := a.Hotels.Upsert(h); err != nil {
		fmt.Println("Could not update hotel:", err)
		return
	}
	a.saveHotels()
	fmt.Printf("%s now manages %s.\n", u.Login, h.Name)
}

func (a *App) toggleUser() {
	u, ok := a.Users.GetByLogin(a.io.readLine("Login: "))
	if !ok {
		fmt.Println("User not found.")
		return
	}
	if u.UserID == a.current.UserID {
		fmt.Println("You cannot deactivate your own account.")
		return
	}
	u.Active = !u.Active
	if err := a.Users.Upsert(u); err != nil {
		fmt.Println("Could not save user:", err)
		return
	}
	a.saveUsers()
	fmt.Printf("Account %s is now %s.\n", u.Login, map[bool]string{true: "active", false: "inactive"}[u.Active])
}

// ---- reports ----

func (a *App) operationsSnapshot() {
	banner("Operations snapshot")
	hotels := a.Hotels.List()
	fmt.Printf("Hotels: %d  Users: %d  Bookings: %d (%d active)\n",
		len(hotels), len(a.Users.List()), len(a.Bookings.List()), len(a.Bookings.ListActive()))
	for _, h := range hotels {
		var revenue int64
		for _, b := range a.Bookings.ListByHotel(h.ID) {
			if b.Status != model.BookingCancelled {
				revenue += b.TotalCents()
			}
		}
		fmt.Printf("  %-10s %-26s rooms %d/%d, restaurants %d, revenue %s\n",
			h.ID, h.Name,
			a.Rooms.CountActiveByHotel(h.ID), len(a.Rooms.ListByHotel(h.ID)),
			a.Restaurants.CountActiveByHotel(h.ID), formatMoney(revenue))
	}
	a.io.pause()
}

// ---- shared save helpers ----
// Saves are logged but not fatal: the in-memory state stays
// authoritative and the admin may retry from the menu.

func (a *App) saveUsers()    { a.logSaveErr(a.Users.SaveAll(), "users") }
func (a *App) saveHotels()   { a.logSaveErr(a.Hotels.SaveAll(), "hotels") }
func (a *App) saveRooms()    { a.logSaveErr(a.Rooms.SaveAll(), "rooms") }
func (a *App) saveBookings() { a.logSaveErr(a.Bookings.SaveAll(), "bookings") }

func (a *App) logSaveErr(err error, collection string) {
	if err != nil {
		a.Log.Error().Err(err).Str("collection", collection).Msg("save failed")
		fmt.Println("Warning: changes are in memory but could not be persisted.")
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
