package stats

import (
	"math"

	"elevatorsim/src/logger"
)

// Collector accumulates conveyance times of delivered passengers. It is an
// explicit object handed to the tick loop rather than ambient state.
type Collector struct {
	passengers int
	totalTime  int
	longest    int
	shortest   int
}

func NewCollector() *Collector {
	return &Collector{
		longest:  math.MinInt,
		shortest: math.MaxInt,
	}
}

// Summary is the aggregate view over all counted passengers.
type Summary struct {
	Passengers int
	Average    float64
	Longest    int
	Shortest   int
}

// ReportCompletion counts one delivered passenger. A conveyance time of
// zero or less indicates a timing defect somewhere in the loop; it is
// flagged and excluded from the statistics.
func (c *Collector) ReportCompletion(conveyanceTime int) {
	if conveyanceTime <= 0 {
		logger.Get().Warn().Int("conveyanceTime", conveyanceTime).Msg("Invalid conveyance time, excluded from statistics")
		return
	}
	c.passengers++
	c.totalTime += conveyanceTime
	if conveyanceTime > c.longest {
		c.longest = conveyanceTime
	}
	if conveyanceTime < c.shortest {
		c.shortest = conveyanceTime
	}
}

// Summary returns the aggregates; ok is false when no passenger was counted.
func (c *Collector) Summary() (summary Summary, ok bool) {
	if c.passengers == 0 {
		return Summary{}, false
	}
	return Summary{
		Passengers: c.passengers,
		Average:    float64(c.totalTime) / float64(c.passengers),
		Longest:    c.longest,
		Shortest:   c.shortest,
	}, true
}

// Finalize logs the end-of-run statistics.
func (c *Collector) Finalize() {
	summary, ok := c.Summary()
	if !ok {
		logger.Get().Info().Msg("No passengers in the simulation")
		return
	}
	logger.Get().Info().
		Int("passengers", summary.Passengers).
		Float64("averageTime", summary.Average).
		Int("longestTime", summary.Longest).
		Int("shortestTime", summary.Shortest).
		Msg("Simulation finished")
}
