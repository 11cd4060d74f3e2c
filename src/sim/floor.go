package sim

import (
	"fmt"
	"math/rand"

	"elevatorsim/src/config"
	"elevatorsim/src/types"
)

// Floor holds the two directional waiting queues and generates passengers
// with random destinations. Only the queues mutate after construction.
type Floor struct {
	Number       int
	up           waitQueue
	down         waitQueue
	destinations []int
}

func NewFloor(number, maxFloor int, strategy config.Structures) *Floor {
	f := &Floor{
		Number: number,
		up:     newWaitQueue(strategy),
		down:   newWaitQueue(strategy),
	}
	// Every floor except this one is a valid destination.
	for floor := 1; floor <= maxFloor; floor++ {
		if floor != number {
			f.destinations = append(f.destinations, floor)
		}
	}
	return f
}

// GeneratePassenger creates a passenger starting here with a destination
// drawn uniformly from the valid destination set.
func (f *Floor) GeneratePassenger(rng *rand.Rand) *types.Passenger {
	destination := f.destinations[rng.Intn(len(f.destinations))]
	return types.NewPassenger(f.Number, destination)
}

// Enqueue appends the passenger to the waiting queue matching its direction.
func (f *Floor) Enqueue(p *types.Passenger) {
	if p.Direction() == types.DirUp {
		f.up.Enqueue(p)
	} else {
		f.down.Enqueue(p)
	}
}

func (f *Floor) queue(dir types.Direction) waitQueue {
	if dir == types.DirUp {
		return f.up
	}
	return f.down
}

// Waiting counts passengers in both queues.
func (f *Floor) Waiting() int {
	return f.up.Len() + f.down.Len()
}

func (f *Floor) String() string {
	return fmt.Sprintf("Floor{number=%d upWaiting=%d downWaiting=%d}", f.Number, f.up.Len(), f.down.Len())
}
