package sim

import (
	"math/rand"

	"elevatorsim/src/config"
	"elevatorsim/src/logger"
	"elevatorsim/src/types"
)

// Collector receives completed conveyance times during the run and produces
// the final summary afterwards.
type Collector interface {
	CompletionReporter
	Finalize()
}

// Simulation is the tick loop. It is the sole mutator of floor and elevator
// state; floors and elevators are visited in construction order every tick,
// and the injected random source is consumed in a fixed order, so runs are
// reproducible under a fixed seed.
type Simulation struct {
	floors      []*Floor
	elevators   []*Elevator
	rng         *rand.Rand
	arrivalProb float64
	duration    int
	collector   Collector
}

// New builds floors 1..cfg.Floors and cfg.Elevators elevators, all idle and
// empty at floor 1. The parameters are assumed to be validated already.
func New(cfg config.Config, rng *rand.Rand, collector Collector) *Simulation {
	s := &Simulation{
		rng:         rng,
		arrivalProb: cfg.ArrivalProb,
		duration:    cfg.Duration,
		collector:   collector,
	}
	for number := 1; number <= cfg.Floors; number++ {
		s.floors = append(s.floors, NewFloor(number, cfg.Floors, cfg.Structures))
	}
	for id := 0; id < cfg.Elevators; id++ {
		s.elevators = append(s.elevators, NewElevator(id, cfg.Floors, cfg.Capacity))
	}
	return s
}

// Run steps through the configured duration and finalizes the collector.
func (s *Simulation) Run() {
	for tick := 0; tick < s.duration; tick++ {
		s.Step(tick)
	}
	s.collector.Finalize()
}

// Step executes one tick: per floor, unload then a possible arrival then
// loading; then a reconciliation sweep where still-waiting passengers book
// pickups; then every elevator travels.
func (s *Simulation) Step(tick int) {
	for _, floor := range s.floors {
		for _, elevator := range s.elevators {
			elevator.UnloadAt(floor.Number, tick, s.collector)
		}

		// One Bernoulli draw per floor per tick.
		if s.rng.Float64() <= s.arrivalProb {
			p := floor.GeneratePassenger(s.rng)
			floor.Enqueue(p)
			p.StartTick = tick
			logger.Get().Debug().
				Int("tick", tick).
				Int("floor", floor.Number).
				Int("destination", p.DestinationFloor).
				Stringer("passenger", p.ID).
				Msg("Passenger arrived")
		}

		for _, elevator := range s.elevators {
			if elevator.CurrentFloor() != floor.Number {
				continue
			}
			// An active elevator draws from its committed direction's
			// queue; an idle one prefers the up queue when it has waiters.
			var queue waitQueue
			switch {
			case elevator.Active():
				queue = floor.queue(elevator.Direction())
			case floor.up.Len() > 0:
				queue = floor.up
			default:
				queue = floor.down
			}
			for queue.Len() > 0 && elevator.Load(queue.Peek()) {
				queue.Dequeue()
			}
		}
	}

	// Remaining waiters book future pickups; the first elevator to accept
	// claims the passenger for this tick.
	for _, floor := range s.floors {
		s.sweep(floor.up)
		s.sweep(floor.down)
	}

	for _, elevator := range s.elevators {
		elevator.Travel()
	}

	s.trace(tick)
}

func (s *Simulation) sweep(queue waitQueue) {
	queue.Each(func(p *types.Passenger) {
		for _, elevator := range s.elevators {
			if elevator.RequestPickup(p) {
				break
			}
		}
	})
}

// trace logs a deep snapshot of every elevator at debug level. The snapshot
// is only taken when debug logging is on.
func (s *Simulation) trace(tick int) {
	if event := logger.Get().Debug(); event.Enabled() {
		event.Int("tick", tick).Interface("elevators", s.Snapshot()).Msg("Tick complete")
	}
}
