package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"hotel-console/internal/model"
)

// Sequential display ids ("HTL-0002", "RST-0003") are derived from
// the highest existing suffix so gaps from removals never collide.

func nextHotelID(hotels []model.Hotel) string {
	return fmt.Sprintf("HTL-%04d", maxSuffix(hotelIDs(hotels), "HTL-")+1)
}

func hotelIDs(hotels []model.Hotel) []string {
	ids := make([]string, 0, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.ID)
	}
	return ids
}

func nextRestaurantID(restaurants []model.Restaurant) string {
	ids := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	return fmt.Sprintf("RST-%04d", maxSuffix(ids, "RST-")+1)
}

func nextMenuItemID(rs model.Restaurant) string {
	prefix := rs.ID + "-M"
	ids := make([]string, 0, len(rs.Menu))
	for _, m := range rs.Menu {
		ids = append(ids, m.ID)
	}
	return fmt.Sprintf("%s%03d", prefix, maxSuffix(ids, prefix)+1)
}

func nextLineID(b model.Booking) string {
	var ids []string
	for _, it := range b.Items {
		if line, ok := it.(model.RestaurantOrderLine); ok {
			ids = append(ids, line.LineID)
		}
	}
	return fmt.Sprintf("ROL-%04d", maxSuffix(ids, "ROL-")+1)
}

func newBookingID() string {
	return "BKG-" + randomTail(8)
}

func newUserID() string {
	return "USR-" + randomTail(12)
}

func randomTail(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(s[:n])
}

func maxSuffix(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		tail, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(tail); err == nil && n > max {
			max = n
		}
	}
	return max
}
