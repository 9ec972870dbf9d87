package console

import (
	"fmt"

	"hotel-console/internal/model"
)

func (a *App) restaurantMenu() {
	if h, ok := a.selectHotel(); ok {
		a.restaurantMenuFor(h)
	}
}

func (a *App) restaurantMenuFor(h model.Hotel) {
	for {
		banner("Restaurants • " + h.Name)
		fmt.Println("1) List restaurants")
		fmt.Println("2) Add restaurant")
		fmt.Println("3) Toggle open/closed")
		fmt.Println("4) Remove restaurant")
		fmt.Println("5) Edit menu")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listRestaurants(h)
		case "2":
			a.addRestaurant(h)
		case "3":
			a.toggleRestaurant(h)
		case "4":
			a.removeRestaurant(h)
		case "5":
			if rs, ok := a.selectRestaurant(h); ok {
				a.menuEditor(rs)
			}
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listRestaurants(h model.Hotel) {
	banner("Restaurants")
	restaurants := a.Restaurants.ListByHotel(h.ID)
	if len(restaurants) == 0 {
		fmt.Println("No restaurants configured for this hotel yet.")
		return
	}
	fmt.Printf("%-10s %-24s %-14s %-14s %-8s %s\n",
		"ID", "Name", "Cuisine", "Hours", "Open", "Menu items")
	for _, rs := range restaurants {
		fmt.Printf("%-10s %-24s %-14s %-14s %-8s %d\n",
			rs.ID, rs.Name, rs.Cuisine, rs.OpenHours, yesNo(rs.Active), len(rs.Menu))
	}
	a.io.pause()
}

func (a *App) selectRestaurant(h model.Hotel) (model.Restaurant, bool) {
	restaurants := a.Restaurants.ListByHotel(h.ID)
	if len(restaurants) == 0 {
		fmt.Println("No restaurants configured for this hotel yet.")
		return model.Restaurant{}, false
	}
	banner("Select restaurant")
	for i, rs := range restaurants {
		fmt.Printf("%d) %s (%s)\n", i+1, rs.Name, rs.ID)
	}
	fmt.Println("0) Back")
	n := a.io.readInt("Select: ")
	if n < 1 || n > len(restaurants) {
		return model.Restaurant{}, false
	}
	return restaurants[n-1], true
}

func (a *App) addRestaurant(h model.Hotel) {
	banner("Add restaurant")
	rs := model.Restaurant{
		ID:        nextRestaurantID(a.Restaurants.List()),
		HotelID:   h.ID,
		Name:      a.io.readLine("Name: "),
		Cuisine:   a.io.readLine("Cuisine: "),
		OpenHours: a.io.readLine("Hours (e.g., 18:00-23:00): "),
		Active:    true,
	}
	if err := a.Restaurants.Upsert(rs); err != nil {
		fmt.Println("Could not save restaurant:", err)
		return
	}
	a.saveRestaurants()
	fmt.Printf("Restaurant created with ID %s\n", rs.ID)
}

func (a *App) toggleRestaurant(h model.Hotel) {
	rs, ok := a.selectRestaurant(h)
	if !ok {
		return
	}
	rs.Active = !rs.Active
	if err := a.Restaurants.Upsert(rs); err != nil {
		fmt.Println("Could not save restaurant:", err)
		return
	}
	a.saveRestaurants()
	if rs.Active {
		fmt.Println(rs.Name + " is now open.")
	} else {
		fmt.Println(rs.Name + " is now closed.")
	}
}

func (a *App) removeRestaurant(h model.Hotel) {
	rs, ok := a.selectRestaurant(h)
	if !ok {
		return
	}
	if !a.io.confirm(fmt.Sprintf("Remove %s (%s)?", rs.Name, rs.ID)) {
		return
	}
	a.Restaurants.Remove(rs.ID)
	a.saveRestaurants()
	fmt.Println("Restaurant removed.")
}

func (a *App) menuEditor(rs model.Restaurant) {
	for {
		banner("Menu — " + rs.Name)
		fmt.Println("1) List items")
		fmt.Println("2) Add item")
		fmt.Println("3) Change price")
		fmt.Println("4) Toggle item")
		fmt.Println("0) Back")
		switch a.io.readLine("Select: ") {
		case "1":
			a.listMenu(rs)
		case "2":
			rs = a.addMenuItem(rs)
		case "3":
			rs = a.changeItemPrice(rs)
		case "4":
			rs = a.toggleMenuItem(rs)
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *App) listMenu(rs model.Restaurant) {
	if len(rs.Menu) == 0 {
		fmt.Println("The menu is empty.")
		return
	}
	fmt.Printf("%-14s %-28s %-12s %-12s %s\n", "ID", "Name", "Category", "Price", "Active")
	for _, m := range rs.Menu {
		fmt.Printf("%-14s %-28s %-12s %-12s %s\n",
			m.ID, m.Name, m.Category, formatMoney(m.PriceCents), yesNo(m.Active))
	}
	a.io.pause()
}

func (a *App) addMenuItem(rs model.Restaurant) model.Restaurant {
	item := model.MenuItem{
		ID:         nextMenuItemID(rs),
		Name:       a.io.readLine("Dish name: "),
		Category:   a.io.readLine("Category (Breakfast/Lunch/Dinner): "),
		PriceCents: a.io.readMoney("Price: "),
		Active:     true,
	}
	rs.Menu = append(rs.Menu, item)
	if err := a.Restaurants.Upsert(rs); err != nil {
		fmt.Println("Could not save menu:", err)
		return rs
	}
	a.saveRestaurants()
	fmt.Printf("Added %s (%s).\n", item.Name, item.ID)
	return rs
}

func (a *App) selectMenuItem(rs model.Restaurant) (int, bool) {
	if len(rs.Menu) == 0 {
		fmt.Println("The menu is empty.")
		return 0, false
	}
	for i, m := range rs.Menu {
		fmt.Printf("%d) %s (%s)\n", i+1, m.Name, formatMoney(m.PriceCents))
	}
	n := a.io.readInt("Select item: ")
	if n < 1 || n > len(rs.Menu) {
		return 0, false
	}
	return n - 1, true
}

func (a *App) changeItemPrice(rs model.Restaurant) model.Restaurant {
	i, ok := a.selectMenuItem(rs)
	if !ok {
		return rs
	}
	// Existing order lines keep their price snapshots; only future
	// orders see the new price.
	rs.Menu[i].PriceCents = a.io.readMoney("New price: ")
	if err := a.Restaurants.Upsert(rs); err != nil {
		fmt.Println("Could not save menu:", err)
		return rs
	}
	a.saveRestaurants()
	fmt.Println("Price updated.")
	return rs
}

func (a *App) toggleMenuItem(rs model.Restaurant) model.Restaurant {
	i, ok := a.selectMenuItem(rs)
	if !ok {
		return rs
	}
	rs.Menu[i].Active = !rs.Menu[i].Active
	if err := a.Restaurants.Upsert(rs); err != nil {
		fmt.Println("Could not save menu:", err)
		return rs
	}
	a.saveRestaurants()
	fmt.Println("Item toggled.")
	return rs
}

func (a *App) saveRestaurants() { a.logSaveErr(a.Restaurants.SaveAll(), "restaurants") }
