package simulation

import "time"

// Arrival is one order placed on a simulated clock. At is the offset
// from the start of the simulation; BatchID groups orders that arrived
// together in a batch process.
type Arrival struct {
	Order   Order
	At      time.Duration
	BatchID string
}

// PoissonArrivals simulates a Poisson arrival process: exponential
// inter-arrival times at ratePerHour, until the horizon is reached.
func (g *Generator) PoissonArrivals(horizon time.Duration, ratePerHour float64, p OrderParams) []Arrival {
	if ratePerHour <= 0 {
		return nil
	}

	arrivals := []Arrival{}
	clock := time.Duration(0)

	for {
		gap := g.expDuration(ratePerHour)
		clock += gap
		if clock > horizon {
			return arrivals
		}

		arrivals = append(arrivals, Arrival{Order: g.GenerateOrder(p), At: clock})
	}
}

// BatchArrivals simulates grouped arrivals: batches arrive as a
// Poisson process and each batch contains a normally distributed
// number of orders, placed a few seconds apart.
func (g *Generator) BatchArrivals(
	horizon time.Duration,
	batchesPerHour float64,
	batchSizeMean, batchSizeStd float64,
	p OrderParams,
) []Arrival {
	if batchesPerHour <= 0 {
		return nil
	}

	arrivals := []Arrival{}
	clock := time.Duration(0)

	for {
		clock += g.expDuration(batchesPerHour)
		if clock > horizon {
			return arrivals
		}

		size := int(g.rng.NormFloat64()*batchSizeStd + batchSizeMean)
		if size < 1 {
			size = 1
		}

		batchID := "BATCH-" + formatMinutes(clock)
		batchClock := clock
		for i := 0; i < size; i++ {
			if i > 0 {
				batchClock += time.Duration((g.rng.Float64()*1.9 + 0.1) * float64(time.Minute))
			}
			if batchClock > horizon {
				break
			}

			arrivals = append(arrivals, Arrival{
				Order:   g.GenerateOrder(p),
				At:      batchClock,
				BatchID: batchID,
			})
		}
		if batchClock > clock {
			clock = batchClock
		}
	}
}

// TimeVaryingArrivals simulates an arrival rate that follows the
// intraday demand profile, assuming the simulation starts at midnight.
func (g *Generator) TimeVaryingArrivals(horizon time.Duration, baseRatePerHour float64, p OrderParams) []Arrival {
	if baseRatePerHour <= 0 {
		return nil
	}

	arrivals := []Arrival{}
	clock := time.Duration(0)

	for {
		hourOfDay := int(clock.Hours()) % 24
		rate := baseRatePerHour * timeMultiplier(hourOfDay)

		clock += g.expDuration(rate)
		if clock > horizon {
			return arrivals
		}

		arrivals = append(arrivals, Arrival{Order: g.GenerateOrder(p), At: clock})
	}
}

// PeakHourArrivals simulates bursts: during any of the given
// hours-of-day orders arrive at peakRatePerHour, otherwise at
// normalRatePerHour.
func (g *Generator) PeakHourArrivals(
	horizon time.Duration,
	peakHours []int,
	peakRatePerHour, normalRatePerHour float64,
	p OrderParams,
) []Arrival {
	if peakRatePerHour <= 0 || normalRatePerHour <= 0 {
		return nil
	}

	peak := make(map[int]bool, len(peakHours))
	for _, h := range peakHours {
		peak[h%24] = true
	}

	arrivals := []Arrival{}
	clock := time.Duration(0)

	for {
		rate := normalRatePerHour
		if peak[int(clock.Hours())%24] {
			rate = peakRatePerHour
		}

		clock += g.expDuration(rate)
		if clock > horizon {
			return arrivals
		}

		arrivals = append(arrivals, Arrival{Order: g.GenerateOrder(p), At: clock})
	}
}

// expDuration draws an exponential inter-arrival gap for a process
// running at ratePerHour events per hour.
func (g *Generator) expDuration(ratePerHour float64) time.Duration {
	hours := g.rng.ExpFloat64() / ratePerHour
	return time.Duration(hours * float64(time.Hour))
}

func formatMinutes(d time.Duration) string {
	return time.Time{}.Add(d).Format("150405")
}
