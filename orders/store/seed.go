package store

import (
	"time"

	"github.com/tomypizza/orderdesk/orders"
)

// DemoSeed returns the fixed demo collection used when no data file
// exists. Due times are relative to now so a fresh store always starts
// with plausible upcoming orders.
func DemoSeed(now time.Time) []orders.Order {
	return []orders.Order{
		{
			ID:        now.Add(-3 * time.Hour).UnixMilli(),
			Name:      "Margherita x2",
			Due:       now.Add(45 * time.Minute),
			Priority:  orders.PriorityHigh,
			Status:    orders.StatusPending,
			CreatedAt: now.Add(-3 * time.Hour),
			Location:  "12 Harbor St",
		},
		{
			ID:          now.Add(-2 * time.Hour).UnixMilli(),
			Name:        "Pepperoni, large",
			Description: "Extra cheese, no oregano",
			Due:         now.Add(2 * time.Hour),
			Priority:    orders.PriorityMedium,
			Status:      orders.StatusPending,
			CreatedAt:   now.Add(-2 * time.Hour),
			Location:    "Olive Square 4",
		},
		{
			ID:        now.Add(-90 * time.Minute).UnixMilli(),
			Name:      "Quattro Stagioni",
			Due:       now.Add(4 * time.Hour),
			Priority:  orders.PriorityLow,
			Status:    orders.StatusPending,
			CreatedAt: now.Add(-90 * time.Minute),
			Location:  "Pickup at counter",
		},
	}
}
