package simulation

import (
	"math"
	"sort"
)

// ShelfCount pairs a shelf identifier with how often it appeared in
// generated pick lists.
type ShelfCount struct {
	ShelfID string
	Count   int
}

// Stats summarizes a set of generated orders.
type Stats struct {
	TotalOrders        int
	AvgItemsPerOrder   float64
	StdItemsPerOrder   float64
	MinItemsPerOrder   int
	MaxItemsPerOrder   int
	TotalPicks         int
	MostPopularShelves []ShelfCount
}

// Statistics computes summary statistics over generated orders. The
// popularity list is capped at the top five shelves, ties broken by
// identifier for stable output.
func Statistics(orders []Order) Stats {
	if len(orders) == 0 {
		return Stats{}
	}

	stats := Stats{
		TotalOrders:      len(orders),
		MinItemsPerOrder: orders[0].NumItems,
		MaxItemsPerOrder: orders[0].NumItems,
	}

	counts := make(map[string]int)
	sum := 0
	for _, o := range orders {
		sum += o.NumItems
		if o.NumItems < stats.MinItemsPerOrder {
			stats.MinItemsPerOrder = o.NumItems
		}
		if o.NumItems > stats.MaxItemsPerOrder {
			stats.MaxItemsPerOrder = o.NumItems
		}

		for _, shelf := range o.PickList {
			counts[shelf]++
		}
	}

	stats.TotalPicks = sum
	stats.AvgItemsPerOrder = float64(sum) / float64(len(orders))

	variance := 0.0
	for _, o := range orders {
		d := float64(o.NumItems) - stats.AvgItemsPerOrder
		variance += d * d
	}
	stats.StdItemsPerOrder = math.Sqrt(variance / float64(len(orders)))

	popular := make([]ShelfCount, 0, len(counts))
	for id, c := range counts {
		popular = append(popular, ShelfCount{ShelfID: id, Count: c})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].ShelfID < popular[j].ShelfID
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}
	stats.MostPopularShelves = popular

	return stats
}
