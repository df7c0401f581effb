// Package simulation synthesizes realistic picking orders against a
// shelf registry: popularity-weighted item selection, normally
// distributed order sizes and several arrival processes. All
// randomness flows from one seeded source, so a fixed seed reproduces
// the exact order stream.
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Order is one synthesized picking order: the items to collect and
// when the order arrived.
type Order struct {
	OrderID   string
	PickList  []string
	Timestamp time.Time
	NumItems  int
}

// OrderParams bounds the size distribution of generated orders. Sizes
// follow a normal distribution clamped into [MinItems, MaxItems].
type OrderParams struct {
	MeanItems float64
	StdItems  float64
	MinItems  int
	MaxItems  int
}

// DefaultOrderParams mirrors typical small-order picking: three items
// on average, never more than eight.
func DefaultOrderParams() OrderParams {
	return OrderParams{MeanItems: 3, StdItems: 1.5, MinItems: 1, MaxItems: 8}
}

// Generator produces orders over a fixed shelf registry. Some shelves
// are more popular than others: weights are drawn once from an
// exponential distribution and normalized, so a handful of shelves
// attract most picks.
type Generator struct {
	shelves []string
	weights []float64
	rng     *rand.Rand
	counter int
	now     func() time.Time
}

// NewGenerator builds a generator over the given shelf identifiers.
// Identifiers are sorted before weights are drawn, so the same seed
// and registry always yield the same popularity profile.
func NewGenerator(shelfIDs []string, seed int64) *Generator {
	shelves := make([]string, len(shelfIDs))
	copy(shelves, shelfIDs)
	sort.Strings(shelves)

	rng := rand.New(rand.NewSource(seed))

	weights := make([]float64, len(shelves))
	total := 0.0
	for i := range weights {
		weights[i] = rng.ExpFloat64() * 2
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}

	return &Generator{
		shelves: shelves,
		weights: weights,
		rng:     rng,
		now:     time.Now,
	}
}

// GenerateOrder produces a single order with a normally distributed
// item count and popularity-weighted shelf selection (without
// replacement within one order).
func (g *Generator) GenerateOrder(p OrderParams) Order {
	n := int(g.rng.NormFloat64()*p.StdItems + p.MeanItems)
	if n < p.MinItems {
		n = p.MinItems
	}
	if n > p.MaxItems {
		n = p.MaxItems
	}
	if n > len(g.shelves) {
		n = len(g.shelves)
	}

	picks := g.sampleShelves(n)

	return Order{
		OrderID:   g.nextOrderID(),
		PickList:  picks,
		Timestamp: g.now(),
		NumItems:  len(picks),
	}
}

// GenerateBatch produces count independent orders.
func (g *Generator) GenerateBatch(count int, p OrderParams) []Order {
	orders := make([]Order, 0, count)
	for i := 0; i < count; i++ {
		orders = append(orders, g.GenerateOrder(p))
	}
	return orders
}

// GenerateTimeBased spreads orders over a span of hours with
// per-hour volumes that follow the business-hour profile: roughly
// ordersPerHourMean during office hours, quieter shoulders and nights.
func (g *Generator) GenerateTimeBased(hours int, ordersPerHourMean, ordersPerHourStd float64, p OrderParams) []Order {
	start := g.now()
	orders := make([]Order, 0, hours*int(ordersPerHourMean+1))

	for hour := 0; hour < hours; hour++ {
		adjustedMean := ordersPerHourMean * timeMultiplier(hour%24)

		count := int(g.rng.NormFloat64()*ordersPerHourStd + adjustedMean)
		if count < 0 {
			count = 0
		}

		for i := 0; i < count; i++ {
			order := g.GenerateOrder(p)
			order.Timestamp = start.Add(time.Duration(hour)*time.Hour +
				time.Duration(g.rng.Intn(60))*time.Minute)
			orders = append(orders, order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp.Before(orders[j].Timestamp)
	})
	return orders
}

// sampleShelves draws n distinct shelves weighted by popularity.
func (g *Generator) sampleShelves(n int) []string {
	remainingIDs := make([]string, len(g.shelves))
	copy(remainingIDs, g.shelves)
	remainingWeights := make([]float64, len(g.weights))
	copy(remainingWeights, g.weights)

	picks := make([]string, 0, n)
	for len(picks) < n && len(remainingIDs) > 0 {
		total := 0.0
		for _, w := range remainingWeights {
			total += w
		}

		r := g.rng.Float64() * total
		chosen := len(remainingIDs) - 1
		for i, w := range remainingWeights {
			r -= w
			if r <= 0 {
				chosen = i
				break
			}
		}

		picks = append(picks, remainingIDs[chosen])
		remainingIDs = append(remainingIDs[:chosen], remainingIDs[chosen+1:]...)
		remainingWeights = append(remainingWeights[:chosen], remainingWeights[chosen+1:]...)
	}

	return picks
}

func (g *Generator) nextOrderID() string {
	g.counter++
	// Counter suffix keeps IDs unique within a generator even when
	// several orders share one millisecond.
	return fmt.Sprintf("ORD-%d-%03d", g.now().UnixMilli(), g.counter%1000)
}

// timeMultiplier models intraday demand: business hours are busy,
// shoulders moderate, nights quiet.
func timeMultiplier(hour int) float64 {
	switch {
	case hour >= 9 && hour <= 17:
		return 1.5
	case (hour >= 6 && hour <= 8) || (hour >= 18 && hour <= 20):
		return 0.8
	default:
		return 0.3
	}
}
