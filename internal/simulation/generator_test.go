package simulation

import (
	"testing"
	"time"
)

var testShelves = []string{
	"A1", "A2", "A3", "A4", "A5",
	"B1", "B2", "B3", "B4", "B5",
	"C1", "C2", "C3", "C4", "C5",
}

func TestGenerateOrderRespectsBounds(t *testing.T) {
	gen := NewGenerator(testShelves, 42)
	params := OrderParams{MeanItems: 3, StdItems: 2, MinItems: 1, MaxItems: 6}

	for i := 0; i < 200; i++ {
		order := gen.GenerateOrder(params)

		if order.NumItems < params.MinItems || order.NumItems > params.MaxItems {
			t.Fatalf("order %d has %d items, want within [%d,%d]",
				i, order.NumItems, params.MinItems, params.MaxItems)
		}
		if order.NumItems != len(order.PickList) {
			t.Fatalf("NumItems %d != pick list length %d", order.NumItems, len(order.PickList))
		}
		if order.OrderID == "" {
			t.Fatal("order has empty ID")
		}

		seen := map[string]bool{}
		for _, shelf := range order.PickList {
			if seen[shelf] {
				t.Fatalf("shelf %q picked twice within one order", shelf)
			}
			seen[shelf] = true
		}
	}
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	params := DefaultOrderParams()

	a := NewGenerator(testShelves, 7)
	b := NewGenerator(testShelves, 7)

	for i := 0; i < 50; i++ {
		oa := a.GenerateOrder(params)
		ob := b.GenerateOrder(params)

		if len(oa.PickList) != len(ob.PickList) {
			t.Fatalf("order %d sizes differ: %d vs %d", i, len(oa.PickList), len(ob.PickList))
		}
		for j := range oa.PickList {
			if oa.PickList[j] != ob.PickList[j] {
				t.Fatalf("order %d diverges at item %d: %q vs %q",
					i, j, oa.PickList[j], ob.PickList[j])
			}
		}
	}
}

func TestGenerateOrderNeverExceedsRegistry(t *testing.T) {
	gen := NewGenerator([]string{"A1", "A2"}, 1)
	order := gen.GenerateOrder(OrderParams{MeanItems: 10, StdItems: 0, MinItems: 5, MaxItems: 10})

	if order.NumItems != 2 {
		t.Fatalf("order has %d items from a 2-shelf registry", order.NumItems)
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := NewGenerator(testShelves, 3)

	orders := gen.GenerateBatch(25, DefaultOrderParams())
	if len(orders) != 25 {
		t.Fatalf("batch size = %d, want 25", len(orders))
	}

	ids := map[string]bool{}
	for _, o := range orders {
		if ids[o.OrderID] {
			t.Fatalf("duplicate order id %q", o.OrderID)
		}
		ids[o.OrderID] = true
	}
}

func TestGenerateTimeBasedOrdersAreSorted(t *testing.T) {
	gen := NewGenerator(testShelves, 9)

	orders := gen.GenerateTimeBased(24, 4, 1, DefaultOrderParams())
	if len(orders) == 0 {
		t.Fatal("expected some orders over a 24h window")
	}

	for i := 1; i < len(orders); i++ {
		if orders[i].Timestamp.Before(orders[i-1].Timestamp) {
			t.Fatalf("orders out of order at %d", i)
		}
	}
}

func TestPoissonArrivals(t *testing.T) {
	gen := NewGenerator(testShelves, 11)
	horizon := 8 * time.Hour

	arrivals := gen.PoissonArrivals(horizon, 6, DefaultOrderParams())
	if len(arrivals) == 0 {
		t.Fatal("expected arrivals at 6/hour over 8 hours")
	}

	var prev time.Duration
	for i, a := range arrivals {
		if a.At < prev {
			t.Fatalf("arrival %d at %v before previous %v", i, a.At, prev)
		}
		if a.At > horizon {
			t.Fatalf("arrival %d at %v beyond horizon %v", i, a.At, horizon)
		}
		prev = a.At
	}

	if arrivals := gen.PoissonArrivals(horizon, 0, DefaultOrderParams()); arrivals != nil {
		t.Fatalf("zero rate: got %d arrivals, want none", len(arrivals))
	}
}

func TestBatchArrivalsShareBatchIDs(t *testing.T) {
	gen := NewGenerator(testShelves, 13)

	arrivals := gen.BatchArrivals(12*time.Hour, 2, 4, 1, DefaultOrderParams())
	if len(arrivals) == 0 {
		t.Fatal("expected batched arrivals")
	}

	batches := map[string]int{}
	for _, a := range arrivals {
		if a.BatchID == "" {
			t.Fatal("batched arrival without batch id")
		}
		batches[a.BatchID]++
	}

	multi := false
	for _, n := range batches {
		if n > 1 {
			multi = true
		}
	}
	if !multi {
		t.Fatal("no batch contained more than one order (size mean is 4)")
	}
}

func TestTimeVaryingArrivalsFollowDailyProfile(t *testing.T) {
	gen := NewGenerator(testShelves, 17)

	// Full week at a healthy base rate: business hours must outproduce
	// nights by a wide margin given the 1.5 vs 0.3 multipliers.
	arrivals := gen.TimeVaryingArrivals(7*24*time.Hour, 10, DefaultOrderParams())
	if len(arrivals) == 0 {
		t.Fatal("expected arrivals over a week")
	}

	busy, quiet := 0, 0
	for _, a := range arrivals {
		hour := int(a.At.Hours()) % 24
		switch {
		case hour >= 9 && hour <= 17:
			busy++
		case hour >= 21 || hour <= 5:
			quiet++
		}
	}
	if busy <= quiet {
		t.Fatalf("busy-hour arrivals (%d) not above night arrivals (%d)", busy, quiet)
	}
}

func TestPeakHourArrivals(t *testing.T) {
	gen := NewGenerator(testShelves, 19)

	arrivals := gen.PeakHourArrivals(24*time.Hour, []int{9, 14}, 30, 2, DefaultOrderParams())
	if len(arrivals) == 0 {
		t.Fatal("expected arrivals")
	}

	peak, offPeak := 0, 0
	for _, a := range arrivals {
		hour := int(a.At.Hours()) % 24
		if hour == 9 || hour == 14 {
			peak++
		} else {
			offPeak++
		}
	}
	// Two peak hours at 30/h ≈ 60 orders vs 22 normal hours at 2/h ≈ 44.
	if peak <= offPeak/2 {
		t.Fatalf("peak arrivals (%d) suspiciously low vs off-peak (%d)", peak, offPeak)
	}
}

func TestStatistics(t *testing.T) {
	orders := []Order{
		{OrderID: "1", PickList: []string{"A1", "B1"}, NumItems: 2},
		{OrderID: "2", PickList: []string{"A1", "B1", "C1", "C2"}, NumItems: 4},
		{OrderID: "3", PickList: []string{"A1"}, NumItems: 1},
	}

	stats := Statistics(orders)

	if stats.TotalOrders != 3 {
		t.Fatalf("total orders = %d, want 3", stats.TotalOrders)
	}
	if stats.TotalPicks != 7 {
		t.Fatalf("total picks = %d, want 7", stats.TotalPicks)
	}
	if stats.MinItemsPerOrder != 1 || stats.MaxItemsPerOrder != 4 {
		t.Fatalf("min/max = %d/%d, want 1/4", stats.MinItemsPerOrder, stats.MaxItemsPerOrder)
	}

	wantAvg := 7.0 / 3.0
	if diff := stats.AvgItemsPerOrder - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("avg = %f, want %f", stats.AvgItemsPerOrder, wantAvg)
	}

	if len(stats.MostPopularShelves) == 0 || stats.MostPopularShelves[0].ShelfID != "A1" {
		t.Fatalf("most popular = %v, want A1 first", stats.MostPopularShelves)
	}
	if stats.MostPopularShelves[0].Count != 3 {
		t.Fatalf("A1 count = %d, want 3", stats.MostPopularShelves[0].Count)
	}

	empty := Statistics(nil)
	if empty.TotalOrders != 0 || empty.TotalPicks != 0 {
		t.Fatalf("empty stats = %+v, want zero value", empty)
	}
}
